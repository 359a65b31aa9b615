package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrQuestionNotFound signals a missing question.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrCapacityExceeded signals an insert into a full corpus.
	ErrCapacityExceeded = errors.New("corpus capacity exceeded")
	// ErrInvalidInput signals empty or malformed question text.
	ErrInvalidInput = errors.New("invalid input")
)

// CapacityExceededError wraps ErrCapacityExceeded with the configured corpus capacity.
type CapacityExceededError struct {
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: corpus holds at most %d questions", ErrCapacityExceeded.Error(), e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// NewCapacityExceeded creates a capacity error.
func NewCapacityExceeded(capacity int) error {
	return &CapacityExceededError{Capacity: capacity}
}
