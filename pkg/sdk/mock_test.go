package dupecheck

import (
	"context"

	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
	healthuc "github.com/kailas-cloud/dupecheck/internal/usecase/health"
	questionuc "github.com/kailas-cloud/dupecheck/internal/usecase/question"
)

// --- questionUseCase mock ---

type mockQuestionUC struct {
	createFn func(ctx context.Context, text string) (domq.Question, error)
	getFn    func(ctx context.Context, id string) (domq.Question, error)
	deleteFn func(ctx context.Context, id string) error
	countFn  func(ctx context.Context) (int, error)
	listFn   func(ctx context.Context) ([]domq.Question, error)
	pageFn   func(ctx context.Context, offset, limit int) (questionuc.Page, error)
}

func (m *mockQuestionUC) Create(ctx context.Context, text string) (domq.Question, error) {
	return m.createFn(ctx, text)
}

func (m *mockQuestionUC) Get(ctx context.Context, id string) (domq.Question, error) {
	return m.getFn(ctx, id)
}

func (m *mockQuestionUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockQuestionUC) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

func (m *mockQuestionUC) List(ctx context.Context) ([]domq.Question, error) {
	return m.listFn(ctx)
}

func (m *mockQuestionUC) Page(ctx context.Context, offset, limit int) (questionuc.Page, error) {
	return m.pageFn(ctx, offset, limit)
}

// --- similarityUseCase mock ---

type mockSimilarityUC struct {
	sequenceFn func(ctx context.Context, text string) (domsim.SequenceReport, error)
	wordsFn    func(ctx context.Context, text string) (domsim.WordReport, error)
}

func (m *mockSimilarityUC) CheckSimilarity(ctx context.Context, text string) (domsim.SequenceReport, error) {
	return m.sequenceFn(ctx, text)
}

func (m *mockSimilarityUC) CheckWords(ctx context.Context, text string) (domsim.WordReport, error) {
	return m.wordsFn(ctx, text)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}

// --- store mock ---

type mockStore struct {
	pingErr error
	closed  bool
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

func (m *mockStore) Close() { m.closed = true }
