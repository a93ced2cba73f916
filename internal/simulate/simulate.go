// Package simulate auto-plays complete dungeon runs to measure balance
package simulate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/events"
	"github.com/KirkDiggler/dice-dungeon/internal/services"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
)

// DefaultMaxCommands bounds a single run
const DefaultMaxCommands = 5000

// Config controls a simulation
type Config struct {
	Runs        int
	Workers     int
	Seed        int64           // run i plays with seed Seed+i
	Class       character.Class // Optional, classes rotate when empty
	Policy      Policy          // Optional, defaults to Greedy
	MaxCommands int             // Optional, defaults to DefaultMaxCommands
}

// RunResult is the outcome of one simulated run
type RunResult struct {
	Index        int
	Seed         int64
	Class        character.Class
	Victory      bool
	RoomsCleared int
	Level        int
	Gold         int
	Commands     int
}

// ClassStats aggregates the runs of one class
type ClassStats struct {
	Runs            int
	Victories       int
	AvgRoomsCleared float64
	AvgLevel        float64
}

// WinRate is the share of won runs
func (c *ClassStats) WinRate() float64 {
	if c.Runs == 0 {
		return 0
	}
	return float64(c.Victories) / float64(c.Runs)
}

// Report aggregates a simulation
type Report struct {
	ClassStats
	ByClass map[character.Class]*ClassStats
	Results []RunResult
}

// Run plays cfg.Runs games across cfg.Workers goroutines. Each run gets its
// own seeded roller and services, so a seed always yields the same report.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Policy == nil {
		cfg.Policy = Greedy{}
	}
	if cfg.MaxCommands <= 0 {
		cfg.MaxCommands = DefaultMaxCommands
	}
	if cfg.Class != "" && !cfg.Class.Valid() {
		return nil, fmt.Errorf("unknown class '%s'", cfg.Class)
	}

	results := make([]RunResult, cfg.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range results {
		g.Go(func() error {
			class := cfg.Class
			if class == "" {
				class = character.Classes[i%len(character.Classes)]
			}
			result, err := playOne(ctx, cfg, i, class)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(results), nil
}

func playOne(ctx context.Context, cfg Config, index int, class character.Class) (RunResult, error) {
	seed := cfg.Seed + int64(index)
	provider := services.NewProvider(&services.ProviderConfig{
		Roller:   dice.NewSeededRoller(seed),
		EventBus: events.NewBattleBus(false),
	})

	sess, err := provider.GameService.NewGame(ctx, &game.NewGameInput{
		OwnerID: fmt.Sprintf("sim-%d", index),
		Class:   class,
	})
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{Index: index, Seed: seed, Class: class}
	for !sess.IsOver() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if result.Commands >= cfg.MaxCommands {
			return result, fmt.Errorf("stalled after %d commands at %s", result.Commands, sess.Run.Progress())
		}

		out, err := provider.GameService.Apply(ctx, sess, cfg.Policy.Next(sess))
		if err != nil {
			return result, err
		}
		result.Commands++
		if out.Victory {
			result.Victory = true
		}
	}

	result.RoomsCleared = sess.Run.RoomsCleared
	result.Level = sess.Player.Level
	result.Gold = sess.Player.Gold
	return result, nil
}

func aggregate(results []RunResult) *Report {
	report := &Report{
		ByClass: make(map[character.Class]*ClassStats),
		Results: results,
	}

	for _, r := range results {
		stats, ok := report.ByClass[r.Class]
		if !ok {
			stats = &ClassStats{}
			report.ByClass[r.Class] = stats
		}
		for _, s := range []*ClassStats{&report.ClassStats, stats} {
			s.Runs++
			if r.Victory {
				s.Victories++
			}
			s.AvgRoomsCleared += float64(r.RoomsCleared)
			s.AvgLevel += float64(r.Level)
		}
	}

	for _, s := range append([]*ClassStats{&report.ClassStats}, classStats(report)...) {
		if s.Runs > 0 {
			s.AvgRoomsCleared /= float64(s.Runs)
			s.AvgLevel /= float64(s.Runs)
		}
	}

	return report
}

func classStats(r *Report) []*ClassStats {
	out := make([]*ClassStats, 0, len(r.ByClass))
	for _, s := range r.ByClass {
		out = append(out, s)
	}
	return out
}
