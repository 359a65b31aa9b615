package question

import (
	"context"

	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

// Repository defines the storage contract for the question corpus.
// Insert must check capacity and store q in one atomic step.
type Repository interface {
	Insert(ctx context.Context, q *domq.Question, capacity int) error
	Get(ctx context.Context, id string) (domq.Question, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domq.Question, error)
}
