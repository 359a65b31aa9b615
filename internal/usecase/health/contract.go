package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CorpusCounter reports the number of stored questions.
type CorpusCounter interface {
	Count(ctx context.Context) (int, error)
}
