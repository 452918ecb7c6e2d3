package repository

import (
	"context"
	"sync"

	"github.com/nexuscrm/nexus/internal/domain"
)

// memoryDealRepo keeps deals in an ordered slice guarded by a mutex.
// Reads hand out copies so callers can never reach into the store;
// the version bumps on every successful mutation.
type memoryDealRepo struct {
	mu      sync.RWMutex
	deals   []domain.Deal
	version uint64
}

// NewMemoryDealRepo creates a DealRepo seeded with the given deals.
func NewMemoryDealRepo(seed []domain.Deal) DealRepo {
	r := &memoryDealRepo{version: 1}
	r.deals = append(r.deals, seed...)
	return r
}

func (r *memoryDealRepo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *memoryDealRepo) List(_ context.Context) ([]domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Deal, len(r.deals))
	copy(out, r.deals)
	return out, nil
}

func (r *memoryDealRepo) GetByID(_ context.Context, id string) (domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.deals {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Deal{}, ErrNotFound
}

func (r *memoryDealRepo) Append(_ context.Context, d domain.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deals = append(r.deals, d)
	r.version++
	return nil
}

func (r *memoryDealRepo) SetStage(_ context.Context, id string, stage domain.DealStage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.deals {
		if r.deals[i].ID != id {
			continue
		}
		// Replace the snapshot rather than editing in place so earlier
		// List results stay untouched.
		next := make([]domain.Deal, len(r.deals))
		copy(next, r.deals)
		next[i].Stage = stage
		r.deals = next
		r.version++
		return nil
	}
	return ErrNotFound
}
