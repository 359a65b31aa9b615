package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the database is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status     Status
	Checks     map[string]CheckResult
	CorpusSize int
	Capacity   int
}

// Service coordinates health checks.
type Service struct {
	db       DBPinger
	corpus   CorpusCounter
	capacity int
}

// New creates a Service. corpus can be nil.
func New(db DBPinger, corpus CorpusCounter) *Service {
	return &Service{db: db, corpus: corpus}
}

// WithCapacity sets the capacity reported alongside the corpus size.
func (s *Service) WithCapacity(capacity int) *Service {
	s.capacity = capacity
	return s
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	report := Report{Capacity: s.capacity}

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		report.Status = Unhealthy
		report.Checks = checks
		return report
	}
	checks["database"] = CheckOK

	if s.corpus != nil {
		n, err := s.corpus.Count(ctx)
		if err != nil {
			checks["corpus"] = CheckError
		} else {
			checks["corpus"] = CheckOK
			report.CorpusSize = n
		}
	}

	report.Status = Healthy
	for _, v := range checks {
		if v == CheckError {
			report.Status = Degraded
			break
		}
	}
	report.Checks = checks
	return report
}
