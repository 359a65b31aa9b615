package question

import (
	"context"
	"sync"

	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

// MemoryRepo implements usecase/question.Repository in process memory.
// Writers hold the lock exclusively; List copies under a read lock.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []domq.Question
}

// NewMemory creates an empty in-memory question repository.
func NewMemory() *MemoryRepo {
	return &MemoryRepo{}
}

// Insert stores q unless the corpus already holds capacity questions (0 = unbounded).
func (r *MemoryRepo) Insert(_ context.Context, q *domq.Question, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if capacity > 0 && len(r.items) >= capacity {
		return domain.NewCapacityExceeded(capacity)
	}
	r.items = append(r.items, *q)
	return nil
}

// Get returns a question by ID.
func (r *MemoryRepo) Get(_ context.Context, id string) (domq.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return domq.Question{}, domain.ErrQuestionNotFound
}

// Delete removes a question. Unknown ids yield ErrQuestionNotFound.
func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrQuestionNotFound
	}
	r.items = append(r.items[:i:i], r.items[i+1:]...)
	return nil
}

// Count returns the corpus size.
func (r *MemoryRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// List returns a snapshot of the corpus in insertion order.
func (r *MemoryRepo) List(_ context.Context) ([]domq.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domq.Question, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID() == id {
			return i
		}
	}
	return -1
}
