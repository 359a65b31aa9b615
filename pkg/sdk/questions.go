package dupecheck

import (
	"context"
	"fmt"
	"time"

	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

// QuestionService manages the bounded question corpus.
type QuestionService struct {
	svc questionUseCase
	obs *observer
}

// Create appends a question. Returns ErrCapacityExceeded when the corpus is full
// and ErrInvalidInput for blank or oversized text.
func (s *QuestionService) Create(ctx context.Context, text string) (_ Question, err error) {
	start := time.Now()
	defer func() { s.obs.observe("question.create", start, err) }()

	q, err := s.svc.Create(ctx, text)
	if err != nil {
		return Question{}, fmt.Errorf("create question: %w", err)
	}
	return fromInternalQuestion(q), nil
}

// Get retrieves a question by ID.
func (s *QuestionService) Get(ctx context.Context, id string) (_ Question, err error) {
	start := time.Now()
	defer func() { s.obs.observe("question.get", start, err) }()

	q, err := s.svc.Get(ctx, id)
	if err != nil {
		return Question{}, fmt.Errorf("get question: %w", err)
	}
	return fromInternalQuestion(q), nil
}

// Delete removes a question by ID, freeing one slot.
func (s *QuestionService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("question.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}

// Count returns the corpus size.
func (s *QuestionService) Count(ctx context.Context) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("question.count", start, err) }()

	n, err := s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// List returns the whole corpus in insertion order.
func (s *QuestionService) List(ctx context.Context) (_ []Question, err error) {
	start := time.Now()
	defer func() { s.obs.observe("question.list", start, err) }()

	qs, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return fromInternalQuestions(qs), nil
}

// Page returns up to limit questions starting at offset.
// limit <= 0 uses the default page size.
func (s *QuestionService) Page(ctx context.Context, offset, limit int) (_ QuestionPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("question.page", start, err) }()

	p, err := s.svc.Page(ctx, offset, limit)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("page questions: %w", err)
	}
	return QuestionPage{
		Questions: fromInternalQuestions(p.Questions),
		Total:     p.Total,
		HasMore:   p.HasMore,
	}, nil
}

func fromInternalQuestion(q domq.Question) Question {
	return Question{ID: q.ID(), Text: q.Text(), CreatedAt: q.CreatedAt()}
}

func fromInternalQuestions(qs []domq.Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = fromInternalQuestion(q)
	}
	return out
}
