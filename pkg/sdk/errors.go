package dupecheck

import "github.com/kailas-cloud/dupecheck/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrQuestionNotFound = domain.ErrQuestionNotFound
	ErrCapacityExceeded = domain.ErrCapacityExceeded
	ErrInvalidInput     = domain.ErrInvalidInput
)

// CapacityExceededError carries the corpus capacity that rejected an insert.
// Use errors.As() to extract it.
type CapacityExceededError = domain.CapacityExceededError
