package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
	healthuc "github.com/kailas-cloud/dupecheck/internal/usecase/health"
	questionuc "github.com/kailas-cloud/dupecheck/internal/usecase/question"
	similarityuc "github.com/kailas-cloud/dupecheck/internal/usecase/similarity"
)

// maxBodyBytes bounds request bodies: the text limit plus JSON overhead.
const maxBodyBytes = 4 * domq.MaxTextSize

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements ServerInterface.
type Server struct {
	questions     *questionuc.Service
	similarity    similarityuc.Checker
	health        *healthuc.Service
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	questions *questionuc.Service,
	similarity similarityuc.Checker,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		questions:  questions,
		similarity: similarity,
		health:     health,
		metrics:    promhttp.Handler(),
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		capacityExceededHandler,
		sentinelHandler(domain.ErrQuestionNotFound, http.StatusNotFound, ErrorResponseCodeQuestionNotFound),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, ErrorResponseCodeValidationFailed),
	}
	return s
}

// WithMetricsHandler replaces the default Prometheus handler.
func (s *Server) WithMetricsHandler(h http.Handler) *Server {
	s.metrics = h
	return s
}

// Root handles GET / by redirecting to the question list.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/questions", http.StatusTemporaryRedirect)
}

// CreateQuestion handles POST /questions.
func (s *Server) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	q, err := s.questions.Create(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, questionToDTO(q))
}

// ListQuestions handles GET /questions.
func (s *Server) ListQuestions(w http.ResponseWriter, r *http.Request, params ListQuestionsParams) {
	page, err := s.questions.Page(r.Context(), derefInt(params.Offset), derefInt(params.Limit))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]Question, len(page.Questions))
	for i, q := range page.Questions {
		items[i] = questionToDTO(q)
	}

	writeJSON(w, http.StatusOK, QuestionListResponse{
		TotalQuestions: page.Total,
		Questions:      items,
		HasMore:        page.HasMore,
	})
}

// GetQuestion handles GET /questions/{id}.
func (s *Server) GetQuestion(w http.ResponseWriter, r *http.Request, id string) {
	q, err := s.questions.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questionToDTO(q))
}

// DeleteQuestion handles DELETE /questions/{id}.
func (s *Server) DeleteQuestion(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.questions.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Question deleted successfully"})
}

// CheckSimilarity handles POST /questions/check-similarity.
func (s *Server) CheckSimilarity(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	report, err := s.similarity.CheckSimilarity(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sequenceReportToDTO(report))
}

// CheckWords handles POST /questions/check-words.
func (s *Server) CheckWords(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	report, err := s.similarity.CheckWords(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wordReportToDTO(report))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]HealthResponseChecks)
	for k, v := range report.Checks {
		checks[k] = HealthResponseChecks(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:     HealthResponseStatus(report.Status),
		Checks:     checks,
		CorpusSize: report.CorpusSize,
		Capacity:   report.Capacity,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

// decodeText reads a {"text": ...} body. A missing text field is a validation error.
func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req TextRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return "", false
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, "Field 'text' is required")
		return "", false
	}
	return *req.Text, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message without exposing internals.
func safeDomainMessage(err error) string {
	var ce *domain.CapacityExceededError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		// Validation messages are client-facing.
		return err.Error()
	}
	sentinels := []error{
		domain.ErrQuestionNotFound,
		domain.ErrCapacityExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// capacityExceededHandler handles ErrCapacityExceeded and reports the limit.
func capacityExceededHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		return false
	}
	var ce *domain.CapacityExceededError
	if errors.As(err, &ce) {
		w.Header().Set("X-Corpus-Capacity", strconv.Itoa(ce.Capacity))
		writeJSON(w, http.StatusConflict, map[string]any{
			"code":     ErrorResponseCodeCapacityExceeded,
			"message":  msg,
			"capacity": ce.Capacity,
		})
		return true
	}
	writeError(w, http.StatusConflict, ErrorResponseCodeCapacityExceeded, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}

func questionToDTO(q domq.Question) Question {
	return Question{ID: q.ID(), Text: q.Text(), CreatedAt: q.CreatedAt()}
}

func sequenceReportToDTO(r domsim.SequenceReport) SimilarityResponse {
	items := make([]SimilarQuestion, len(r.Matches))
	for i, m := range r.Matches {
		items[i] = SimilarQuestion{ID: m.QuestionID(), Text: m.Text(), Similarity: m.Score()}
	}
	return SimilarityResponse{SimilarQuestions: items, SimilarityCount: r.Count()}
}

func wordReportToDTO(r domsim.WordReport) WordCheckResponse {
	items := make([]MatchingQuestion, len(r.Matches))
	for i, m := range r.Matches {
		words := m.Words()
		if words == nil {
			words = []string{}
		}
		items[i] = MatchingQuestion{ID: m.QuestionID(), Text: m.Text(), CommonWords: words}
	}
	return WordCheckResponse{MatchingQuestions: items, MatchCount: r.Count()}
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
