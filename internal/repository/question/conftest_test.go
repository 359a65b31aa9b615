package question

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/dupecheck/internal/db"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hgetAllFn     func(ctx context.Context, key string) (map[string]string, error)
	zcardFn       func(ctx context.Context, key string) (int64, error)
	evalIntFn     func(ctx context.Context, script *db.Script, keys, args []string) (int64, error)
	evalStringsFn func(ctx context.Context, script *db.Script, keys, args []string) ([]string, error)
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) ZCard(ctx context.Context, key string) (int64, error) {
	if m.zcardFn != nil {
		return m.zcardFn(ctx, key)
	}
	return 0, nil
}

func (m *mockStore) EvalInt(ctx context.Context, script *db.Script, keys, args []string) (int64, error) {
	if m.evalIntFn != nil {
		return m.evalIntFn(ctx, script, keys, args)
	}
	return 1, nil
}

func (m *mockStore) EvalStrings(ctx context.Context, script *db.Script, keys, args []string) ([]string, error) {
	if m.evalStringsFn != nil {
		return m.evalStringsFn(ctx, script, keys, args)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "test:"), ms
}

var testCreatedAt = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func testQuestion(t *testing.T) domq.Question {
	t.Helper()
	return domq.Reconstruct("q-1", "What is the capital of France?", testCreatedAt)
}

// repository is the shared contract exercised by the backend-agnostic tests.
type repository interface {
	Insert(ctx context.Context, q *domq.Question, capacity int) error
	Get(ctx context.Context, id string) (domq.Question, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domq.Question, error)
}

func mustNew(t *testing.T, text string) domq.Question {
	t.Helper()
	q, err := domq.New(text)
	if err != nil {
		t.Fatalf("domq.New: %v", err)
	}
	return q
}
