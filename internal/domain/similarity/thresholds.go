package similarity

import "fmt"

// Default classification policy.
const (
	DefaultSequenceThreshold = 0.6
	DefaultMinSharedWords    = 1
)

// Thresholds is the classification policy for both detectors.
type Thresholds struct {
	// Sequence is the ratio a stored question must strictly exceed to be similar.
	Sequence float64
	// MinSharedWords is the minimum intersection size for a word-overlap match.
	MinSharedWords int
}

// DefaultThresholds returns the default policy (ratio > 0.6, at least one shared word).
func DefaultThresholds() Thresholds {
	return Thresholds{
		Sequence:       DefaultSequenceThreshold,
		MinSharedWords: DefaultMinSharedWords,
	}
}

// Validate checks that Sequence is in [0,1) and MinSharedWords is positive.
func (t Thresholds) Validate() error {
	if t.Sequence < 0 || t.Sequence >= 1 {
		return fmt.Errorf("sequence threshold must be in [0, 1), got %v", t.Sequence)
	}
	if t.MinSharedWords < 1 {
		return fmt.Errorf("min shared words must be at least 1, got %d", t.MinSharedWords)
	}
	return nil
}

// IsSimilar reports whether a sequence ratio classifies as a match.
func (t Thresholds) IsSimilar(ratio float64) bool { return ratio > t.Sequence }

// IsOverlap reports whether a shared word list classifies as a match.
func (t Thresholds) IsOverlap(shared []string) bool { return len(shared) >= t.MinSharedWords }
