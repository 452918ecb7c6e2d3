package repository

import (
	"context"
	"sync"

	"github.com/nexuscrm/nexus/internal/domain"
)

type memoryLeadRepo struct {
	mu      sync.RWMutex
	leads   []domain.Lead
	version uint64
}

// NewMemoryLeadRepo creates a LeadRepo seeded with the given leads.
func NewMemoryLeadRepo(seed []domain.Lead) LeadRepo {
	r := &memoryLeadRepo{version: 1}
	r.leads = append(r.leads, seed...)
	return r
}

func (r *memoryLeadRepo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *memoryLeadRepo) List(_ context.Context) ([]domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Lead, len(r.leads))
	for i, l := range r.leads {
		out[i] = l
		out[i].Tags = append([]string(nil), l.Tags...)
	}
	return out, nil
}

func (r *memoryLeadRepo) Append(_ context.Context, l domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.Tags = append([]string(nil), l.Tags...)
	r.leads = append(r.leads, l)
	r.version++
	return nil
}
