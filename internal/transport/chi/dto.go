package chi

import "time"

// ErrorResponseCode is the machine-readable error code of an API error.
type ErrorResponseCode string

// Error codes returned by the API.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorResponseCodeQuestionNotFound ErrorResponseCode = "question_not_found"
	ErrorResponseCodeCapacityExceeded ErrorResponseCode = "capacity_exceeded"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
	ErrorResponseCodeRouteNotFound    ErrorResponseCode = "not_found"
	ErrorResponseCodeMethodNotAllowed ErrorResponseCode = "method_not_allowed"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// TextRequest is the body of create and check requests.
type TextRequest struct {
	Text *string `json:"text"`
}

// Question is a stored corpus item.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionListResponse is a page of the corpus.
type QuestionListResponse struct {
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
	HasMore        bool       `json:"has_more"`
}

// ListQuestionsParams are the query parameters of GET /questions.
type ListQuestionsParams struct {
	Offset *int `json:"offset,omitempty"`
	Limit  *int `json:"limit,omitempty"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// SimilarQuestion is one sequence-detector match.
type SimilarQuestion struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

// SimilarityResponse is the result of POST /questions/check-similarity.
type SimilarityResponse struct {
	SimilarQuestions []SimilarQuestion `json:"similar_questions"`
	SimilarityCount  int               `json:"similarity_count"`
}

// MatchingQuestion is one word-overlap match.
type MatchingQuestion struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	CommonWords []string `json:"common_words"`
}

// WordCheckResponse is the result of POST /questions/check-words.
type WordCheckResponse struct {
	MatchingQuestions []MatchingQuestion `json:"matching_questions"`
	MatchCount        int                `json:"match_count"`
}

// HealthResponseStatus is the aggregated health status.
type HealthResponseStatus string

// HealthResponseChecks is an individual check outcome.
type HealthResponseChecks string

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     HealthResponseStatus            `json:"status"`
	Checks     map[string]HealthResponseChecks `json:"checks"`
	CorpusSize int                             `json:"corpus_size"`
	Capacity   int                             `json:"capacity"`
}
