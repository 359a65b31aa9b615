package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockCorpusCounter struct {
	n     int
	err   error
	calls int
}

func (m *mockCorpusCounter) Count(_ context.Context) (int, error) {
	m.calls++
	return m.n, m.err
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockCorpusCounter{n: 3}).WithCapacity(10)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["corpus"] != CheckOK {
		t.Errorf("expected corpus %q, got %q", CheckOK, r.Checks["corpus"])
	}
	if r.CorpusSize != 3 || r.Capacity != 10 {
		t.Errorf("expected corpus 3/10, got %d/%d", r.CorpusSize, r.Capacity)
	}
}

func TestCheck_DBError(t *testing.T) {
	corpus := &mockCorpusCounter{n: 3}
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, corpus)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if corpus.calls != 0 {
		t.Error("corpus should not be counted when the database is down")
	}
}

func TestCheck_CorpusError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockCorpusCounter{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["corpus"] != CheckError {
		t.Errorf("expected corpus %q, got %q", CheckError, r.Checks["corpus"])
	}
}

func TestCheck_NoCorpus(t *testing.T) {
	svc := New(&mockDBPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["corpus"]; ok {
		t.Error("corpus check should be absent when corpus is nil")
	}
}
