package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed player repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a new Redis-backed player repository from a client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("player:%s", id)
}

func (r *redisRepo) ownerPlayersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:players", ownerID)
}

// Create stores a new player
func (r *redisRepo) Create(ctx context.Context, player *character.Player) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(player.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to check player existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("player with ID '%s' already exists", player.ID).
			WithMeta("player_id", player.ID)
	}

	if err := r.write(ctx, player); err != nil {
		return err
	}

	if err := r.client.SAdd(ctx, r.ownerPlayersKey(player.OwnerID), player.ID).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to index player")
	}

	return nil
}

// Get retrieves a player by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Player, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	data, err := r.read(ctx, id)
	if err != nil {
		return nil, err
	}

	return FromData(data)
}

// GetByOwner retrieves every player of an owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Player, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerPlayersKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to list player IDs")
	}

	players := make([]*character.Player, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(ctx, id)
		if err != nil {
			if dnderr.IsNotFound(err) {
				log.Printf("Player %s listed for owner %s but missing, skipping", id, ownerID)
				continue
			}
			return nil, err
		}
		players = append(players, p)
	}

	return players, nil
}

// Update replaces a stored player
func (r *redisRepo) Update(ctx context.Context, player *character.Player) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(player.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to check player existence")
	}
	if exists == 0 {
		return dnderr.NotFoundf("player with ID '%s' not found", player.ID).
			WithMeta("player_id", player.ID)
	}

	return r.write(ctx, player)
}

// Delete removes a player
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("player ID is required")
	}

	data, err := r.read(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to delete player")
	}
	if err := r.client.SRem(ctx, r.ownerPlayersKey(data.OwnerID), id).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unindex player")
	}

	return nil
}

func (r *redisRepo) write(ctx context.Context, player *character.Player) error {
	jsonData, err := json.Marshal(ToData(player))
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal player")
	}

	if err := r.client.Set(ctx, r.key(player.ID), string(jsonData), 0).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to save player").
			WithMeta("player_id", player.ID)
	}

	return nil
}

func (r *redisRepo) read(ctx context.Context, id string) (*PlayerData, error) {
	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to get player")
	}

	var data PlayerData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal player")
	}

	return &data, nil
}
