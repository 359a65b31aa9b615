package question

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	"github.com/kailas-cloud/dupecheck/internal/metrics"
)

// InstrumentedRepository wraps a Repository and keeps the corpus metrics current.
type InstrumentedRepository struct {
	inner  Repository
	logger *zap.Logger
}

// NewInstrumentedRepository wraps repo with corpus metrics and logging.
func NewInstrumentedRepository(repo Repository, logger *zap.Logger) *InstrumentedRepository {
	return &InstrumentedRepository{inner: repo, logger: logger}
}

// Insert delegates and counts capacity rejections.
func (r *InstrumentedRepository) Insert(ctx context.Context, q *domq.Question, capacity int) error {
	err := r.inner.Insert(ctx, q, capacity)
	switch {
	case err == nil:
		metrics.CorpusSize.Inc()
	case errors.Is(err, domain.ErrCapacityExceeded):
		metrics.CapacityRejectionsTotal.Inc()
	default:
		r.logger.Error("Corpus insert failed", zap.String("question_id", q.ID()), zap.Error(err))
	}
	return err //nolint:wrapcheck // decorator is transparent
}

// Get delegates to the inner repository.
func (r *InstrumentedRepository) Get(ctx context.Context, id string) (domq.Question, error) {
	return r.inner.Get(ctx, id) //nolint:wrapcheck // decorator is transparent
}

// Delete delegates and updates the corpus gauge.
func (r *InstrumentedRepository) Delete(ctx context.Context, id string) error {
	err := r.inner.Delete(ctx, id)
	switch {
	case err == nil:
		metrics.CorpusSize.Dec()
	case !errors.Is(err, domain.ErrQuestionNotFound):
		r.logger.Error("Corpus delete failed", zap.String("question_id", id), zap.Error(err))
	}
	return err //nolint:wrapcheck // decorator is transparent
}

// Count delegates and resynchronizes the corpus gauge.
func (r *InstrumentedRepository) Count(ctx context.Context) (int, error) {
	n, err := r.inner.Count(ctx)
	if err == nil {
		metrics.CorpusSize.Set(float64(n))
	}
	return n, err //nolint:wrapcheck // decorator is transparent
}

// List delegates and resynchronizes the corpus gauge.
func (r *InstrumentedRepository) List(ctx context.Context) ([]domq.Question, error) {
	qs, err := r.inner.List(ctx)
	if err == nil {
		metrics.CorpusSize.Set(float64(len(qs)))
	}
	return qs, err //nolint:wrapcheck // decorator is transparent
}
