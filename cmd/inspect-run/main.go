// Package main prints stored runs and player saves from Redis
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/characters"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/dungeons"
)

var (
	redisURL string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "inspect-run",
	Short: "Inspect dungeon runs stored in Redis",
}

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print a run and its player",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRepos(func(ctx context.Context, runs dungeons.Repository, players characters.Repository) error {
			run, err := runs.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printRun(ctx, run, players)
		})
	},
}

var ownerCmd = &cobra.Command{
	Use:   "owner <owner-id>",
	Short: "Print the active run of a Discord user",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withRepos(func(ctx context.Context, runs dungeons.Repository, players characters.Repository) error {
			run, err := runs.GetActiveByOwner(ctx, args[0])
			if err != nil {
				return err
			}
			return printRun(ctx, run, players)
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every active run",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withRepos(func(ctx context.Context, runs dungeons.Repository, _ characters.Repository) error {
			active, err := runs.ListActive(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Found %d active runs\n", len(active))
			for _, run := range active {
				fmt.Printf("  %s owner=%s %s %s\n", run.ID, run.OwnerID, run.Progress(), run.State)
			}
			return nil
		})
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()

	defaultURL := os.Getenv("REDIS_URL")
	if defaultURL == "" {
		defaultURL = "redis://localhost:6379/0"
	}

	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", defaultURL, "Redis URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(listCmd)
}

func withRepos(fn func(ctx context.Context, runs dungeons.Repository, players characters.Repository) error) error {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return fn(ctx, dungeons.NewRedis(client), characters.NewRedis(client))
}

func printRun(ctx context.Context, run *exploration.Run, players characters.Repository) error {
	fmt.Printf("Run ID: %s\n", run.ID)
	fmt.Printf("Owner: %s\n", run.OwnerID)
	fmt.Printf("State: %s\n", run.State)
	fmt.Printf("Progress: %s (%d cleared)\n", run.Progress(), run.RoomsCleared)
	fmt.Printf("Created: %s\n", run.CreatedAt.Format(time.RFC3339))
	if run.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", run.CompletedAt.Format(time.RFC3339))
	}

	rooms := make([]string, len(run.Rooms))
	for i, kind := range run.Rooms {
		marker := " "
		if i == run.CurrentRoom {
			marker = ">"
		}
		rooms[i] = fmt.Sprintf("%s%2d %s", marker, i+1, kind.Label())
	}
	fmt.Printf("Rooms:\n  %s\n", strings.Join(rooms, "\n  "))

	player, err := players.Get(ctx, run.PlayerID)
	if err != nil {
		fmt.Printf("Player %s: %v\n", run.PlayerID, err)
		return nil
	}
	printPlayer(player)
	return nil
}

func printPlayer(p *character.Player) {
	fmt.Printf("Player: %s (%s)\n", p.ID, p)
	fmt.Printf("Experience: %d/%d\n", p.Experience, p.ExperienceForNextLevel())
	for _, item := range p.Inventory {
		state := ""
		if item.Equipped {
			state = " [equipped]"
		}
		fmt.Printf("  %s%s\n", item.Label(), state)
	}
}
