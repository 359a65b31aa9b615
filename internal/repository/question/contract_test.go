package question

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kailas-cloud/dupecheck/internal/db/sqlite"
	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

// backends returns a fresh repository per backend that runs without external services.
func backends(t *testing.T) map[string]func(t *testing.T) repository {
	t.Helper()
	return map[string]func(t *testing.T) repository{
		"memory": func(_ *testing.T) repository { return NewMemory() },
		"sqlite": func(t *testing.T) repository {
			t.Helper()
			s, err := sqlite.Open(filepath.Join(t.TempDir(), "questions.db"))
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(s.Close)
			repo := NewSQL(s.DB())
			if err := repo.Migrate(context.Background()); err != nil {
				t.Fatalf("migrate: %v", err)
			}
			return repo
		},
	}
}

func TestRepository_InsertListOrder(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			texts := []string{"first", "second", "third"}
			for _, text := range texts {
				q := mustNew(t, text)
				if err := repo.Insert(ctx, &q, 10); err != nil {
					t.Fatalf("insert %q: %v", text, err)
				}
			}

			qs, err := repo.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(qs) != len(texts) {
				t.Fatalf("len = %d, want %d", len(qs), len(texts))
			}
			for i, q := range qs {
				if q.Text() != texts[i] {
					t.Errorf("qs[%d] = %q, want %q", i, q.Text(), texts[i])
				}
			}
		})
	}
}

func TestRepository_GetRoundTrip(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			q := mustNew(t, "Café au lait?")
			if err := repo.Insert(ctx, &q, 0); err != nil {
				t.Fatalf("insert: %v", err)
			}
			got, err := repo.Get(ctx, q.ID())
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Text() != q.Text() || !got.CreatedAt().Equal(q.CreatedAt()) {
				t.Errorf("got %v/%v, want %v/%v", got.Text(), got.CreatedAt(), q.Text(), q.CreatedAt())
			}

			if _, err := repo.Get(ctx, "no-such-id"); !errors.Is(err, domain.ErrQuestionNotFound) {
				t.Errorf("expected ErrQuestionNotFound, got %v", err)
			}
		})
	}
}

func TestRepository_CapacityRejectsAndLeavesCorpusUnchanged(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			for i := 0; i < 2; i++ {
				q := mustNew(t, "question")
				if err := repo.Insert(ctx, &q, 2); err != nil {
					t.Fatalf("insert %d: %v", i, err)
				}
			}

			q := mustNew(t, "one too many")
			err := repo.Insert(ctx, &q, 2)
			if !errors.Is(err, domain.ErrCapacityExceeded) {
				t.Fatalf("expected ErrCapacityExceeded, got %v", err)
			}
			n, _ := repo.Count(ctx)
			if n != 2 {
				t.Errorf("Count() = %d, want 2", n)
			}
		})
	}
}

func TestRepository_DeleteFreesSlot(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			a := mustNew(t, "a")
			b := mustNew(t, "b")
			if err := repo.Insert(ctx, &a, 1); err != nil {
				t.Fatalf("insert a: %v", err)
			}
			if err := repo.Insert(ctx, &b, 1); !errors.Is(err, domain.ErrCapacityExceeded) {
				t.Fatalf("expected capacity error, got %v", err)
			}
			if err := repo.Delete(ctx, a.ID()); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := repo.Delete(ctx, a.ID()); !errors.Is(err, domain.ErrQuestionNotFound) {
				t.Errorf("second delete: expected ErrQuestionNotFound, got %v", err)
			}
			if err := repo.Insert(ctx, &b, 1); err != nil {
				t.Fatalf("insert b after delete: %v", err)
			}
		})
	}
}

func TestRepository_UnboundedCapacity(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			for i := 0; i < 25; i++ {
				q := mustNew(t, "q")
				if err := repo.Insert(ctx, &q, 0); err != nil {
					t.Fatalf("insert %d: %v", i, err)
				}
			}
			n, err := repo.Count(ctx)
			if err != nil || n != 25 {
				t.Errorf("Count() = %d, %v; want 25", n, err)
			}
		})
	}
}

func TestRepository_ConcurrentInsertsNeverOvershoot(t *testing.T) {
	const capacity = 10
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				accepted int
			)
			for i := 0; i < 40; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					q, err := domq.New("race")
					if err != nil {
						t.Errorf("domq.New: %v", err)
						return
					}
					err = repo.Insert(ctx, &q, capacity)
					switch {
					case err == nil:
						mu.Lock()
						accepted++
						mu.Unlock()
					case !errors.Is(err, domain.ErrCapacityExceeded):
						t.Errorf("unexpected error: %v", err)
					}
				}()
			}
			wg.Wait()

			if accepted != capacity {
				t.Errorf("accepted = %d, want %d", accepted, capacity)
			}
			n, _ := repo.Count(ctx)
			if n != capacity {
				t.Errorf("Count() = %d, want %d", n, capacity)
			}
		})
	}
}

func TestMemoryRepo_ListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	a := mustNew(t, "a")
	_ = repo.Insert(ctx, &a, 0)
	snap, _ := repo.List(ctx)

	b := mustNew(t, "b")
	_ = repo.Insert(ctx, &b, 0)
	_ = repo.Delete(ctx, a.ID())

	if len(snap) != 1 || snap[0].ID() != a.ID() {
		t.Errorf("snapshot changed after writes: %v", snap)
	}
}
