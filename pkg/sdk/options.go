package dupecheck

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/dupecheck/internal/backend"
	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
	questionuc "github.com/kailas-cloud/dupecheck/internal/usecase/question"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver    string // "valkey", "redis", "sqlite" or "memory"
	addrs     []string
	password  string
	path      string
	keyPrefix string

	capacity   int
	thresholds domsim.Thresholds

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		capacity:   questionuc.DefaultCapacity,
		thresholds: domsim.DefaultThresholds(),
	}
}

// WithValkey configures the client to store the corpus in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = backend.DriverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to store the corpus in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = backend.DriverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithSQLite stores the corpus in a SQLite database file.
// The parent directory is created if missing.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = backend.DriverSQLite
		c.path = path
	})
}

// WithMemory keeps the corpus in process memory. Nothing survives Close.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = backend.DriverMemory
	})
}

// WithKeyPrefix sets the key prefix for Valkey/Redis. Default: "dupecheck:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithCapacity sets the maximum corpus size. 0 means unbounded.
// Default: 10.
func WithCapacity(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.capacity = n
	})
}

// WithSequenceThreshold sets the ratio a stored question must exceed
// to be reported as similar. Must be in [0, 1). Default: 0.6.
func WithSequenceThreshold(ratio float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.thresholds.Sequence = ratio
	})
}

// WithMinSharedWords sets how many words a stored question must share
// with the candidate to be reported by the word detector. Default: 1.
func WithMinSharedWords(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.thresholds.MinSharedWords = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
