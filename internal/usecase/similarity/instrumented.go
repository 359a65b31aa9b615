package similarity

import (
	"context"
	"time"

	"go.uber.org/zap"

	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
	"github.com/kailas-cloud/dupecheck/internal/metrics"
)

var _ Checker = (*InstrumentedChecker)(nil)

// InstrumentedChecker wraps a Checker with metrics and debug logging.
type InstrumentedChecker struct {
	inner  Checker
	logger *zap.Logger
}

// NewInstrumentedChecker wraps inner with observability.
func NewInstrumentedChecker(inner Checker, logger *zap.Logger) *InstrumentedChecker {
	return &InstrumentedChecker{inner: inner, logger: logger}
}

// CheckSimilarity delegates and records the sequence detector outcome.
func (c *InstrumentedChecker) CheckSimilarity(ctx context.Context, text string) (domsim.SequenceReport, error) {
	start := time.Now()
	report, err := c.inner.CheckSimilarity(ctx, text)
	c.observe(metrics.DetectorSequence, time.Since(start), report.Count(), err)
	return report, err //nolint:wrapcheck // decorator is transparent
}

// CheckWords delegates and records the word-overlap detector outcome.
func (c *InstrumentedChecker) CheckWords(ctx context.Context, text string) (domsim.WordReport, error) {
	start := time.Now()
	report, err := c.inner.CheckWords(ctx, text)
	c.observe(metrics.DetectorWords, time.Since(start), report.Count(), err)
	return report, err //nolint:wrapcheck // decorator is transparent
}

func (c *InstrumentedChecker) observe(detector string, d time.Duration, matches int, err error) {
	metrics.SimilarityCheckDuration.WithLabelValues(detector).Observe(d.Seconds())

	if err != nil {
		metrics.SimilarityChecksTotal.WithLabelValues(detector, "error").Inc()
		c.logger.Warn("Duplicate check failed",
			zap.String("detector", detector),
			zap.Duration("duration", d),
			zap.Error(err),
		)
		return
	}

	outcome := "no_match"
	if matches > 0 {
		outcome = "match"
	}
	metrics.SimilarityChecksTotal.WithLabelValues(detector, outcome).Inc()
	metrics.SimilarityMatches.WithLabelValues(detector).Observe(float64(matches))

	c.logger.Debug("Duplicate check completed",
		zap.String("detector", detector),
		zap.Duration("duration", d),
		zap.Int("matches", matches),
	)
}
