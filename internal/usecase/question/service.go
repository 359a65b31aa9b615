package question

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	"github.com/kailas-cloud/dupecheck/internal/logger"
)

// DefaultCapacity is the corpus size limit when none is configured.
const DefaultCapacity = 10

// Page is one window of the corpus in insertion order.
type Page struct {
	Questions []domq.Question
	Total     int
	HasMore   bool
}

// Service handles corpus mutations and reads.
type Service struct {
	repo            Repository
	capacity        int
	defaultPageSize int
	maxPageSize     int
}

// New creates a question service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		capacity:        DefaultCapacity,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithCapacity sets the corpus size limit. 0 disables the limit.
func (s *Service) WithCapacity(capacity int) *Service {
	if capacity >= 0 {
		s.capacity = capacity
	}
	return s
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Capacity returns the configured corpus size limit (0 = unbounded).
func (s *Service) Capacity() int { return s.capacity }

// Create validates text and appends a new question to the corpus.
func (s *Service) Create(ctx context.Context, text string) (domq.Question, error) {
	q, err := domq.New(text)
	if err != nil {
		return domq.Question{}, fmt.Errorf("validate question: %w", err)
	}

	if err := s.repo.Insert(ctx, &q, s.capacity); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			logger.FromContext(ctx).Warn("Question rejected: corpus full",
				zap.Int("capacity", s.capacity),
			)
		}
		return domq.Question{}, fmt.Errorf("create question: %w", err)
	}

	logger.FromContext(ctx).Info("Question created", zap.String("question_id", q.ID()))
	return q, nil
}

// Get retrieves a question by ID.
func (s *Service) Get(ctx context.Context, id string) (domq.Question, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return domq.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// Delete removes a question by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	logger.FromContext(ctx).Info("Question deleted", zap.String("question_id", id))
	return nil
}

// Count returns the corpus size.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// List returns the whole corpus in insertion order.
func (s *Service) List(ctx context.Context) ([]domq.Question, error) {
	qs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return qs, nil
}

// Page returns limit questions starting at offset. limit <= 0 uses the default page size.
func (s *Service) Page(ctx context.Context, offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, fmt.Errorf("offset must be non-negative: %w", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	qs, err := s.List(ctx)
	if err != nil {
		return Page{}, err
	}

	total := len(qs)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	return Page{
		Questions: qs[offset:end],
		Total:     total,
		HasMore:   end < total,
	}, nil
}
