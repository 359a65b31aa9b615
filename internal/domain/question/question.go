package question

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kailas-cloud/dupecheck/internal/domain"
)

// MaxTextSize is the maximum question text size in bytes.
const MaxTextSize = 8192 // 8KB

// Question is a stored corpus item (immutable value object).
type Question struct {
	id        string
	text      string
	createdAt time.Time
}

// New validates text and creates a Question with a fresh UUID and the current UTC time.
func New(text string) (Question, error) {
	if err := ValidateText(text); err != nil {
		return Question{}, err
	}
	return Question{
		id:        uuid.NewString(),
		text:      text,
		createdAt: time.Now().UTC(),
	}, nil
}

// ValidateText checks that text is non-blank, valid UTF-8 and at most MaxTextSize bytes.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required: %w", domain.ErrInvalidInput)
	}
	if err := ValidateCandidate(text); err != nil {
		return err
	}
	return nil
}

// ValidateCandidate checks a similarity candidate. Empty text is allowed.
func ValidateCandidate(text string) error {
	if len(text) > MaxTextSize {
		return fmt.Errorf("text too large (max %d bytes): %w", MaxTextSize, domain.ErrInvalidInput)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("text must be valid UTF-8: %w", domain.ErrInvalidInput)
	}
	return nil
}

// Reconstruct creates a Question without validation (storage hydration).
func Reconstruct(id, text string, createdAt time.Time) Question {
	return Question{id: id, text: text, createdAt: createdAt}
}

// ID returns the question identifier.
func (q Question) ID() string { return q.id }

// Text returns the original question text.
func (q Question) Text() string { return q.text }

// CreatedAt returns the creation timestamp (UTC).
func (q Question) CreatedAt() time.Time { return q.createdAt }
