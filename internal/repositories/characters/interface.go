package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Create stores a new player
	Create(ctx context.Context, player *character.Player) error

	// Get retrieves a player by ID
	Get(ctx context.Context, id string) (*character.Player, error)

	// GetByOwner retrieves every player of an owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Player, error)

	// Update replaces a stored player
	Update(ctx context.Context, player *character.Player) error

	// Delete removes a player
	Delete(ctx context.Context, id string) error
}
