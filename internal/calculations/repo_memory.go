package calculations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	data    map[string][]Calculation // userID -> calculations
	deleted map[string]bool
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data:    make(map[string][]Calculation),
		deleted: make(map[string]bool),
	}
}

// Create stores a calculation for its user.
func (r *MemoryRepo) Create(ctx context.Context, calc Calculation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[calc.UserID] = append(r.data[calc.UserID], calc)
	return nil
}

// GetByID returns a live calculation by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Calculation, error) {
	if err := ctx.Err(); err != nil {
		return Calculation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, calc := range r.data[userID] {
		if calc.ID == id && !r.deleted[id] {
			return calc, nil
		}
	}
	return Calculation{}, ErrNotFound
}

// ListByUser returns live calculations newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	live := make([]Calculation, 0, len(r.data[userID]))
	for _, calc := range r.data[userID] {
		if !r.deleted[calc.ID] {
			live = append(live, calc)
		}
	}
	r.mu.RUnlock()

	if offset >= len(live) {
		return []Calculation{}, nil
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].CreatedAt.After(live[j].CreatedAt)
	})
	end := offset + limit
	if end > len(live) {
		end = len(live)
	}
	return live[offset:end], nil
}

// SoftDelete hides a calculation from reads.
func (r *MemoryRepo) SoftDelete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, calc := range r.data[userID] {
		if calc.ID == id && !r.deleted[id] {
			r.deleted[id] = true
			return nil
		}
	}
	return ErrNotFound
}
