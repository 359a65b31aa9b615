package dupecheck

import (
	"context"
	"fmt"
	"time"

	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
)

// SimilarityService runs the duplicate detectors against the corpus.
type SimilarityService struct {
	svc similarityUseCase
	obs *observer
}

// CheckSimilarity reports stored questions whose sequence ratio with text
// exceeds the configured threshold.
func (s *SimilarityService) CheckSimilarity(ctx context.Context, text string) (_ SimilarityResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("similarity.sequence", start, err) }()

	report, err := s.svc.CheckSimilarity(ctx, text)
	if err != nil {
		return SimilarityResult{}, fmt.Errorf("check similarity: %w", err)
	}
	s.obs.observeMatches("similarity.sequence", report.Count())
	return fromSequenceReport(report), nil
}

// CheckWords reports stored questions sharing words with text.
func (s *SimilarityService) CheckWords(ctx context.Context, text string) (_ WordResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("similarity.words", start, err) }()

	report, err := s.svc.CheckWords(ctx, text)
	if err != nil {
		return WordResult{}, fmt.Errorf("check words: %w", err)
	}
	s.obs.observeMatches("similarity.words", report.Count())
	return fromWordReport(report), nil
}

func fromSequenceReport(r domsim.SequenceReport) SimilarityResult {
	matches := make([]SimilarQuestion, len(r.Matches))
	for i, m := range r.Matches {
		matches[i] = SimilarQuestion{ID: m.QuestionID(), Text: m.Text(), Score: m.Score()}
	}
	return SimilarityResult{Matches: matches, Count: r.Count()}
}

func fromWordReport(r domsim.WordReport) WordResult {
	matches := make([]WordMatch, len(r.Matches))
	for i, m := range r.Matches {
		words := make([]string, len(m.Words()))
		copy(words, m.Words())
		matches[i] = WordMatch{ID: m.QuestionID(), Text: m.Text(), CommonWords: words}
	}
	return WordResult{Matches: matches, Count: r.Count()}
}
