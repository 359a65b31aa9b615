package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dupecheck/internal/metrics"
)

func TestInstrumentedChecker_RecordsOutcome(t *testing.T) {
	c := NewInstrumentedChecker(New(corpusOf("red blue green")), zap.NewNop())

	matchBefore := testutil.ToFloat64(metrics.SimilarityChecksTotal.WithLabelValues(metrics.DetectorWords, "match"))
	noMatchBefore := testutil.ToFloat64(metrics.SimilarityChecksTotal.WithLabelValues(metrics.DetectorWords, "no_match"))

	if _, err := c.CheckWords(context.Background(), "blue"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.CheckWords(context.Background(), "purple"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(metrics.SimilarityChecksTotal.WithLabelValues(metrics.DetectorWords, "match")); v != matchBefore+1 {
		t.Errorf("match count = %f, want %f", v, matchBefore+1)
	}
	if v := testutil.ToFloat64(metrics.SimilarityChecksTotal.WithLabelValues(metrics.DetectorWords, "no_match")); v != noMatchBefore+1 {
		t.Errorf("no_match count = %f, want %f", v, noMatchBefore+1)
	}
}

func TestInstrumentedChecker_RecordsError(t *testing.T) {
	c := NewInstrumentedChecker(New(&mockCorpus{err: errors.New("down")}), zap.NewNop())
	before := testutil.ToFloat64(metrics.SimilarityChecksTotal.WithLabelValues(metrics.DetectorSequence, "error"))

	if _, err := c.CheckSimilarity(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
	if v := testutil.ToFloat64(metrics.SimilarityChecksTotal.WithLabelValues(metrics.DetectorSequence, "error")); v != before+1 {
		t.Errorf("error count = %f, want %f", v, before+1)
	}
}
