package similarity

import (
	"context"
	"fmt"

	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
)

var _ Checker = (*Service)(nil)

// Service scores a candidate text against a corpus snapshot.
type Service struct {
	corpus     CorpusReader
	thresholds domsim.Thresholds
}

// New creates a similarity service with the default thresholds.
func New(corpus CorpusReader) *Service {
	return &Service{corpus: corpus, thresholds: domsim.DefaultThresholds()}
}

// WithThresholds overrides the classification policy. Invalid policies are ignored.
func (s *Service) WithThresholds(t domsim.Thresholds) *Service {
	if t.Validate() == nil {
		s.thresholds = t
	}
	return s
}

// Thresholds returns the active classification policy.
func (s *Service) Thresholds() domsim.Thresholds { return s.thresholds }

// CheckSimilarity returns every stored question whose normalized sequence ratio
// against text strictly exceeds the sequence threshold.
func (s *Service) CheckSimilarity(ctx context.Context, text string) (domsim.SequenceReport, error) {
	if err := domq.ValidateCandidate(text); err != nil {
		return domsim.SequenceReport{}, fmt.Errorf("validate candidate: %w", err)
	}

	corpus, err := s.corpus.List(ctx)
	if err != nil {
		return domsim.SequenceReport{}, fmt.Errorf("read corpus: %w", err)
	}

	candidate := domsim.Normalize(text)
	matches := make([]domsim.SequenceMatch, 0)
	for _, q := range corpus {
		ratio := domsim.Ratio(candidate, domsim.Normalize(q.Text()))
		if s.thresholds.IsSimilar(ratio) {
			matches = append(matches, domsim.NewSequenceMatch(q.ID(), q.Text(), domsim.Percent(ratio)))
		}
	}
	return domsim.SequenceReport{Matches: matches}, nil
}

// CheckWords returns every stored question sharing at least the minimum number of
// case-insensitive whitespace tokens with text.
func (s *Service) CheckWords(ctx context.Context, text string) (domsim.WordReport, error) {
	if err := domq.ValidateCandidate(text); err != nil {
		return domsim.WordReport{}, fmt.Errorf("validate candidate: %w", err)
	}

	corpus, err := s.corpus.List(ctx)
	if err != nil {
		return domsim.WordReport{}, fmt.Errorf("read corpus: %w", err)
	}

	candidate := domsim.Words(text)
	matches := make([]domsim.WordMatch, 0)
	if len(candidate) == 0 {
		return domsim.WordReport{Matches: matches}, nil
	}
	for _, q := range corpus {
		shared := candidate.Shared(domsim.Words(q.Text()))
		if len(shared) > 0 && s.thresholds.IsOverlap(shared) {
			matches = append(matches, domsim.NewWordMatch(q.ID(), q.Text(), shared))
		}
	}
	return domsim.WordReport{Matches: matches}, nil
}
