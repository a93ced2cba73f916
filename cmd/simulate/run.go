package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-dungeon/internal/config"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/simulate"
)

var (
	runs    int
	workers int
	seed    int64
	class   string
	verbose bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play many runs and print the aggregate results",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().IntVar(&runs, "runs", 300, "Number of runs to play")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Parallel runs (defaults to SIMULATE_WORKERS)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Base seed, run i uses seed+i (defaults to DUNGEON_SEED or the clock)")
	runCmd.Flags().StringVar(&class, "class", "", "Play a single class instead of rotating")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "Keep the game logs")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if workers <= 0 {
		workers = cfg.Simulate.Workers
	}
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Game.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
	}

	if !verbose {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	report, err := simulate.Run(ctx, simulate.Config{
		Runs:    runs,
		Workers: workers,
		Seed:    seed,
		Class:   character.Class(class),
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Printf("Played %d runs with %d workers in %s (seed %d)\n\n", report.Runs, workers, time.Since(start).Round(time.Millisecond), seed)
	printStats("All", &report.ClassStats)
	for _, c := range character.Classes {
		if stats, ok := report.ByClass[c]; ok {
			printStats(c.Name(), stats)
		}
	}

	return nil
}

func printStats(label string, s *simulate.ClassStats) {
	fmt.Printf("%-9s runs %4d  wins %4d  win rate %5.1f%%  rooms %4.1f  level %4.1f\n",
		label, s.Runs, s.Victories, 100*s.WinRate(), s.AvgRoomsCleared, s.AvgLevel)
}
