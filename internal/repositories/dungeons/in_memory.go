package dungeons

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]*exploration.Run
}

// NewInMemoryRepository creates a new in-memory run repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		runs: make(map[string]*exploration.Run),
	}
}

// Create creates a new run
func (r *inMemoryRepository) Create(ctx context.Context, run *exploration.Run) error {
	if err := validateRun(run); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; exists {
		return dnderr.AlreadyExistsf("run with ID '%s' already exists", run.ID).
			WithMeta("run_id", run.ID)
	}

	r.runs[run.ID] = run.Copy()
	return nil
}

// Get retrieves a run by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*exploration.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[id]
	if !exists {
		return nil, dnderr.NotFoundf("run with ID '%s' not found", id).
			WithMeta("run_id", id)
	}

	return run.Copy(), nil
}

// Update updates an existing run
func (r *inMemoryRepository) Update(ctx context.Context, run *exploration.Run) error {
	if err := validateRun(run); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; !exists {
		return dnderr.NotFoundf("run with ID '%s' not found", run.ID).
			WithMeta("run_id", run.ID)
	}

	r.runs[run.ID] = run.Copy()
	return nil
}

// Delete removes a run
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		return dnderr.NotFoundf("run with ID '%s' not found", id).
			WithMeta("run_id", id)
	}

	delete(r.runs, id)
	return nil
}

// GetActiveByOwner retrieves the active run of an owner
func (r *inMemoryRepository) GetActiveByOwner(ctx context.Context, ownerID string) (*exploration.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, run := range r.runs {
		if run.OwnerID == ownerID && run.IsActive() {
			return run.Copy(), nil
		}
	}

	return nil, dnderr.NotFoundf("no active run found for owner '%s'", ownerID).
		WithMeta("owner_id", ownerID)
}

// ListActive retrieves all active runs
func (r *inMemoryRepository) ListActive(ctx context.Context) ([]*exploration.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []*exploration.Run
	for _, run := range r.runs {
		if run.IsActive() {
			active = append(active, run.Copy())
		}
	}

	return active, nil
}

func validateRun(run *exploration.Run) error {
	if run == nil {
		return dnderr.InvalidArgument("run cannot be nil")
	}
	if run.ID == "" {
		return dnderr.InvalidArgument("run ID is required")
	}
	if run.OwnerID == "" {
		return dnderr.InvalidArgument("run owner ID is required")
	}
	return nil
}
