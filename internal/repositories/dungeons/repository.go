package dungeons

//go:generate mockgen -destination=mock/mock_repository.go -package=mockdungeons -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
)

// Repository defines the interface for run persistence
type Repository interface {
	// Create stores a new run
	Create(ctx context.Context, run *exploration.Run) error

	// Get retrieves a run by ID
	Get(ctx context.Context, id string) (*exploration.Run, error)

	// Update replaces a stored run
	Update(ctx context.Context, run *exploration.Run) error

	// Delete removes a run
	Delete(ctx context.Context, id string) error

	// GetActiveByOwner retrieves the run an owner is currently playing
	GetActiveByOwner(ctx context.Context, ownerID string) (*exploration.Run, error)

	// ListActive retrieves every run still in progress
	ListActive(ctx context.Context) ([]*exploration.Run, error)
}
