package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=mockdungeon -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/clock"
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/dungeons"
	"github.com/KirkDiggler/dice-dungeon/internal/uuid"
)

// Repository is an alias for the run repository interface
type Repository = dungeons.Repository

// Service defines the dungeon run service interface
type Service interface {
	// CreateRun generates a dungeon and starts a run in its first room
	CreateRun(ctx context.Context, input *CreateRunInput) (*exploration.Run, error)

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, runID string) (*exploration.Run, error)

	// GetActiveRun retrieves the run an owner is playing
	GetActiveRun(ctx context.Context, ownerID string) (*exploration.Run, error)

	// EnterRoom starts resolving the current room
	EnterRoom(ctx context.Context, runID string) (*exploration.Run, error)

	// CompleteRoom marks the current room as resolved. Clearing the last
	// room completes the run.
	CompleteRoom(ctx context.Context, runID string) (*exploration.Run, error)

	// ProceedToNextRoom moves a cleared run to its next room
	ProceedToNextRoom(ctx context.Context, runID string) (*exploration.Run, error)

	// FailRun ends a run after the player was defeated
	FailRun(ctx context.Context, runID string) (*exploration.Run, error)
}

// CreateRunInput contains data for creating a run
type CreateRunInput struct {
	OwnerID  string
	PlayerID string
	Length   int   // Optional, defaults to DefaultLength
	Seed     int64 // Optional, generates the rooms from a seeded roller when set
}

type service struct {
	repository    Repository
	roller        dice.Roller
	uuidGenerator uuid.Generator
	clock         clock.Clock
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	Roller        dice.Roller    // Required
	UUIDGenerator uuid.Generator // Optional
	Clock         clock.Clock    // Optional
}

// NewService creates a new dungeon service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		clock:         cfg.Clock,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewPrefixedGenerator("run")
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}

	return svc
}

// CreateRun generates a dungeon and starts a run
func (s *service) CreateRun(ctx context.Context, input *CreateRunInput) (*exploration.Run, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if input.PlayerID == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	existing, err := s.repository.GetActiveByOwner(ctx, input.OwnerID)
	if err != nil && !dnderr.IsNotFound(err) {
		return nil, dnderr.Wrap(err, "failed to check for an active run")
	}
	if existing != nil {
		return nil, dnderr.FailedPreconditionf("owner already has an active run '%s'", existing.ID).
			WithMeta("run_id", existing.ID).
			WithMeta("owner_id", input.OwnerID)
	}

	length := input.Length
	if length == 0 {
		length = DefaultLength
	}

	roller := s.roller
	if input.Seed != 0 {
		roller = dice.NewSeededRoller(input.Seed)
	}

	run := &exploration.Run{
		ID:        s.uuidGenerator.New(),
		OwnerID:   input.OwnerID,
		PlayerID:  input.PlayerID,
		State:     exploration.RunStateRoomReady,
		Rooms:     Generate(roller, length),
		Seed:      input.Seed,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repository.Create(ctx, run); err != nil {
		return nil, dnderr.Wrap(err, "failed to create run").
			WithMeta("run_id", run.ID)
	}

	log.Printf("Created run %s for owner %s with %d rooms", run.ID, run.OwnerID, len(run.Rooms))
	return run, nil
}

// GetRun retrieves a run by ID
func (s *service) GetRun(ctx context.Context, runID string) (*exploration.Run, error) {
	if runID == "" {
		return nil, dnderr.InvalidArgument("run ID is required")
	}

	run, err := s.repository.Get(ctx, runID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get run '%s'", runID).
			WithMeta("run_id", runID)
	}

	return run, nil
}

// GetActiveRun retrieves the active run of an owner
func (s *service) GetActiveRun(ctx context.Context, ownerID string) (*exploration.Run, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	run, err := s.repository.GetActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get active run").
			WithMeta("owner_id", ownerID)
	}

	return run, nil
}

// EnterRoom starts resolving the current room
func (s *service) EnterRoom(ctx context.Context, runID string) (*exploration.Run, error) {
	return s.transition(ctx, runID, func(run *exploration.Run) *dnderr.Error {
		if !run.CanEnterRoom() {
			return dnderr.FailedPreconditionf("cannot enter a room while the run is %s", run.State)
		}
		run.State = exploration.RunStateInProgress
		return nil
	})
}

// CompleteRoom marks the current room as resolved
func (s *service) CompleteRoom(ctx context.Context, runID string) (*exploration.Run, error) {
	return s.transition(ctx, runID, func(run *exploration.Run) *dnderr.Error {
		if run.State != exploration.RunStateInProgress {
			return dnderr.FailedPreconditionf("cannot complete a room while the run is %s", run.State)
		}
		run.RoomsCleared++
		if run.IsLastRoom() {
			now := s.clock.Now()
			run.State = exploration.RunStateComplete
			run.CompletedAt = &now
			log.Printf("Run %s complete after %d rooms", run.ID, run.RoomsCleared)
			return nil
		}
		run.State = exploration.RunStateRoomCleared
		return nil
	})
}

// ProceedToNextRoom moves to the next room
func (s *service) ProceedToNextRoom(ctx context.Context, runID string) (*exploration.Run, error) {
	return s.transition(ctx, runID, func(run *exploration.Run) *dnderr.Error {
		if !run.CanProceed() {
			return dnderr.FailedPreconditionf("cannot proceed while the run is %s", run.State)
		}
		run.CurrentRoom++
		run.State = exploration.RunStateRoomReady
		return nil
	})
}

// FailRun ends an active run
func (s *service) FailRun(ctx context.Context, runID string) (*exploration.Run, error) {
	return s.transition(ctx, runID, func(run *exploration.Run) *dnderr.Error {
		if !run.IsActive() {
			return dnderr.FailedPreconditionf("run is already %s", run.State)
		}
		now := s.clock.Now()
		run.State = exploration.RunStateFailed
		run.CompletedAt = &now
		log.Printf("Run %s failed in room %d", run.ID, run.CurrentRoom+1)
		return nil
	})
}

// transition loads a run, applies fn and stores the result
func (s *service) transition(ctx context.Context, runID string, fn func(*exploration.Run) *dnderr.Error) (*exploration.Run, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	if err := fn(run); err != nil {
		return nil, err.WithMeta("run_id", runID)
	}

	if err := s.repository.Update(ctx, run); err != nil {
		return nil, dnderr.Wrap(err, "failed to update run").
			WithMeta("run_id", runID)
	}

	return run, nil
}
