package similarity

import (
	"context"

	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
)

// CorpusReader returns a consistent snapshot of the corpus in insertion order.
type CorpusReader interface {
	List(ctx context.Context) ([]domq.Question, error)
}

// Checker runs both duplicate detectors against the corpus.
type Checker interface {
	CheckSimilarity(ctx context.Context, text string) (domsim.SequenceReport, error)
	CheckWords(ctx context.Context, text string) (domsim.WordReport, error)
}
