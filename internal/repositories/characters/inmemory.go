package characters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
)

// inMemoryRepository implements Repository with player snapshots in a map
type inMemoryRepository struct {
	mu      sync.RWMutex
	players map[string]*PlayerData
}

// NewInMemoryRepository creates a new in-memory player repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		players: make(map[string]*PlayerData),
	}
}

// Create stores a new player
func (r *inMemoryRepository) Create(ctx context.Context, player *character.Player) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[player.ID]; exists {
		return dnderr.AlreadyExistsf("player with ID '%s' already exists", player.ID).
			WithMeta("player_id", player.ID)
	}

	r.players[player.ID] = ToData(player)
	return nil
}

// Get retrieves a player by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*character.Player, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.players[id]
	if !exists {
		return nil, dnderr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}

	return FromData(data)
}

// GetByOwner retrieves every player of an owner
func (r *inMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Player, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var players []*character.Player
	for _, data := range r.players {
		if data.OwnerID != ownerID {
			continue
		}
		p, err := FromData(data)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, nil
}

// Update replaces a stored player
func (r *inMemoryRepository) Update(ctx context.Context, player *character.Player) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[player.ID]; !exists {
		return dnderr.NotFoundf("player with ID '%s' not found", player.ID).
			WithMeta("player_id", player.ID)
	}

	r.players[player.ID] = ToData(player)
	return nil
}

// Delete removes a player
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[id]; !exists {
		return dnderr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}

	delete(r.players, id)
	return nil
}

func validatePlayer(player *character.Player) error {
	if player == nil {
		return dnderr.InvalidArgument("player cannot be nil")
	}
	if player.ID == "" {
		return dnderr.InvalidArgument("player ID is required")
	}
	if player.OwnerID == "" {
		return dnderr.InvalidArgument("player owner ID is required")
	}
	return nil
}
