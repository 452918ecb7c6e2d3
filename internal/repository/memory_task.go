package repository

import (
	"context"
	"sync"

	"github.com/nexuscrm/nexus/internal/domain"
)

type memoryTaskRepo struct {
	mu      sync.RWMutex
	tasks   []domain.Task
	version uint64
}

// NewMemoryTaskRepo creates a TaskRepo seeded with the given tasks.
func NewMemoryTaskRepo(seed []domain.Task) TaskRepo {
	r := &memoryTaskRepo{version: 1}
	r.tasks = append(r.tasks, seed...)
	return r
}

func (r *memoryTaskRepo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *memoryTaskRepo) List(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memoryTaskRepo) GetByID(_ context.Context, id string) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, ErrNotFound
}

func (r *memoryTaskRepo) Append(_ context.Context, t domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, t)
	r.version++
	return nil
}

func (r *memoryTaskRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID != id {
			continue
		}
		next := make([]domain.Task, len(r.tasks))
		copy(next, r.tasks)
		next[i].Completed = completed
		r.tasks = next
		r.version++
		return nil
	}
	return ErrNotFound
}
