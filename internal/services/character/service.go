package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/characters"
	"github.com/KirkDiggler/dice-dungeon/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface
type Service interface {
	// CreatePlayer creates a fresh player of the given class
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*character.Player, error)

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, playerID string) (*character.Player, error)

	// ListPlayers lists every player of an owner
	ListPlayers(ctx context.Context, ownerID string) ([]*character.Player, error)

	// SavePlayer persists the current state of a player
	SavePlayer(ctx context.Context, player *character.Player) error

	// DeletePlayer removes a player
	DeletePlayer(ctx context.Context, playerID string) error
}

// CreatePlayerInput contains the data needed to create a player
type CreatePlayerInput struct {
	OwnerID string
	Class   character.Class
}

type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewPrefixedGenerator("player")
	}

	return svc
}

// CreatePlayer creates a fresh player of the given class
func (s *service) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*character.Player, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if !input.Class.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown class '%s'", input.Class).
			WithMeta("class", string(input.Class))
	}

	player := character.NewPlayer(input.Class)
	player.ID = s.uuidGenerator.New()
	player.OwnerID = input.OwnerID

	if err := s.repository.Create(ctx, player); err != nil {
		return nil, dnderr.Wrap(err, "failed to create player").
			WithMeta("player_id", player.ID)
	}

	log.Printf("Created %s player %s for owner %s", input.Class.Name(), player.ID, player.OwnerID)
	return player, nil
}

// GetPlayer retrieves a player by ID
func (s *service) GetPlayer(ctx context.Context, playerID string) (*character.Player, error) {
	if playerID == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	player, err := s.repository.Get(ctx, playerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get player '%s'", playerID).
			WithMeta("player_id", playerID)
	}

	return player, nil
}

// ListPlayers lists every player of an owner
func (s *service) ListPlayers(ctx context.Context, ownerID string) ([]*character.Player, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	players, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list players").
			WithMeta("owner_id", ownerID)
	}

	return players, nil
}

// SavePlayer persists the current state of a player
func (s *service) SavePlayer(ctx context.Context, player *character.Player) error {
	if player == nil {
		return dnderr.InvalidArgument("player cannot be nil")
	}

	if err := s.repository.Update(ctx, player); err != nil {
		return dnderr.Wrap(err, "failed to save player").
			WithMeta("player_id", player.ID)
	}

	return nil
}

// DeletePlayer removes a player
func (s *service) DeletePlayer(ctx context.Context, playerID string) error {
	if playerID == "" {
		return dnderr.InvalidArgument("player ID is required")
	}

	if err := s.repository.Delete(ctx, playerID); err != nil {
		return dnderr.Wrap(err, "failed to delete player").
			WithMeta("player_id", playerID)
	}

	return nil
}
