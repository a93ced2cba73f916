package dungeons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/redis/go-redis/v9"
)

const activeRunsKey = "runs:active"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis. Each run is one JSON
// value; owners and active runs are tracked in sets.
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func runKey(id string) string {
	return fmt.Sprintf("run:%s", id)
}

func ownerRunsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:runs", ownerID)
}

// Create creates a new run
func (r *redisRepository) Create(ctx context.Context, run *exploration.Run) error {
	if err := validateRun(run); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, runKey(run.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to check run existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("run with ID '%s' already exists", run.ID).
			WithMeta("run_id", run.ID)
	}

	if err := r.write(ctx, run); err != nil {
		return err
	}

	if err := r.client.SAdd(ctx, ownerRunsKey(run.OwnerID), run.ID).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to index run by owner")
	}

	return r.syncActive(ctx, run)
}

// Get retrieves a run by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*exploration.Run, error) {
	data, err := r.client.Get(ctx, runKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("run with ID '%s' not found", id).
			WithMeta("run_id", id)
	}
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to get run")
	}

	var run exploration.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal run")
	}

	return &run, nil
}

// Update updates an existing run
func (r *redisRepository) Update(ctx context.Context, run *exploration.Run) error {
	if err := validateRun(run); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, runKey(run.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to check run existence")
	}
	if exists == 0 {
		return dnderr.NotFoundf("run with ID '%s' not found", run.ID).
			WithMeta("run_id", run.ID)
	}

	if err := r.write(ctx, run); err != nil {
		return err
	}

	return r.syncActive(ctx, run)
}

// Delete removes a run
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	run, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, runKey(id)).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to delete run")
	}
	if err := r.client.SRem(ctx, ownerRunsKey(run.OwnerID), id).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unindex run")
	}
	if err := r.client.SRem(ctx, activeRunsKey, id).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unindex active run")
	}

	return nil
}

// GetActiveByOwner retrieves the active run of an owner
func (r *redisRepository) GetActiveByOwner(ctx context.Context, ownerID string) (*exploration.Run, error) {
	ids, err := r.client.SMembers(ctx, ownerRunsKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to list owner runs")
	}

	for _, id := range ids {
		run, err := r.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if run.IsActive() {
			return run, nil
		}
	}

	return nil, dnderr.NotFoundf("no active run found for owner '%s'", ownerID).
		WithMeta("owner_id", ownerID)
}

// ListActive retrieves all active runs
func (r *redisRepository) ListActive(ctx context.Context) ([]*exploration.Run, error) {
	ids, err := r.client.SMembers(ctx, activeRunsKey).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to list active runs")
	}

	runs := make([]*exploration.Run, 0, len(ids))
	for _, id := range ids {
		run, err := r.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (r *redisRepository) write(ctx context.Context, run *exploration.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal run")
	}

	if err := r.client.Set(ctx, runKey(run.ID), string(data), 0).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to save run").
			WithMeta("run_id", run.ID)
	}

	return nil
}

func (r *redisRepository) syncActive(ctx context.Context, run *exploration.Run) error {
	var err error
	if run.IsActive() {
		err = r.client.SAdd(ctx, activeRunsKey, run.ID).Err()
	} else {
		err = r.client.SRem(ctx, activeRunsKey, run.ID).Err()
	}
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to update active run index")
	}
	return nil
}

// NewRedis creates a Redis-backed repository from a client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}
