package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashReader
	SortedSetReader
	ScriptRunner
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashReader reads hash-based records.
type HashReader interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// SortedSetReader reads sorted set cardinality.
type SortedSetReader interface {
	ZCard(ctx context.Context, key string) (int64, error)
}

// Script is a server-side Lua script. Scripts run atomically on the server, so
// multi-key read-check-write sequences go through a Script instead of separate calls.
type Script struct {
	Name   string
	Source string
}

// ScriptRunner executes Lua scripts.
type ScriptRunner interface {
	EvalInt(ctx context.Context, script *Script, keys, args []string) (int64, error)
	EvalStrings(ctx context.Context, script *Script, keys, args []string) ([]string, error)
}
