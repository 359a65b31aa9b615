package dupecheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dupecheck/internal/backend"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
	domsim "github.com/kailas-cloud/dupecheck/internal/domain/similarity"
	healthuc "github.com/kailas-cloud/dupecheck/internal/usecase/health"
	questionuc "github.com/kailas-cloud/dupecheck/internal/usecase/question"
	similarityuc "github.com/kailas-cloud/dupecheck/internal/usecase/similarity"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for mocks in tests.
type questionUseCase interface {
	Create(ctx context.Context, text string) (domq.Question, error)
	Get(ctx context.Context, id string) (domq.Question, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domq.Question, error)
	Page(ctx context.Context, offset, limit int) (questionuc.Page, error)
}

type similarityUseCase interface {
	CheckSimilarity(ctx context.Context, text string) (domsim.SequenceReport, error)
	CheckWords(ctx context.Context, text string) (domsim.WordReport, error)
}

type storePinger interface {
	Ping(ctx context.Context) error
	Close()
}

// Client is the dupecheck SDK entry point.
type Client struct {
	store       storePinger
	questionSvc questionUseCase
	simSvc      similarityUseCase
	healthSvc   healthUseCase
	capacity    int
	obs         *observer
}

// New creates a Client and opens the configured backend.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	b, err := backend.Open(ctx, backend.Config{
		Driver:           cfg.driver,
		Addrs:            cfg.addrs,
		Password:         cfg.password,
		Path:             cfg.path,
		KeyPrefix:        cfg.keyPrefix,
		ReadinessTimeout: defaultReadinessTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("dupecheck: %w", err)
	}

	return wireClient(b, b.Repository, cfg, obs), nil
}

func (c *clientConfig) validate() error {
	switch c.driver {
	case "":
		return errors.New("dupecheck: backend required (use WithValkey, WithRedis, WithSQLite or WithMemory)")
	case backend.DriverValkey, backend.DriverRedis:
		if len(c.addrs) == 0 || c.addrs[0] == "" {
			return fmt.Errorf("dupecheck: %s address required", c.driver)
		}
	case backend.DriverSQLite:
		if c.path == "" {
			return errors.New("dupecheck: sqlite path required")
		}
	case backend.DriverMemory:
	default:
		return fmt.Errorf("dupecheck: unknown driver %q", c.driver)
	}
	if c.capacity < 0 {
		return fmt.Errorf("dupecheck: capacity must be non-negative, got %d", c.capacity)
	}
	if err := c.thresholds.Validate(); err != nil {
		return fmt.Errorf("dupecheck: %w", err)
	}
	return nil
}

func wireClient(store storePinger, repo questionuc.Repository, cfg *clientConfig, obs *observer) *Client {
	questionSvc := questionuc.New(repo).WithCapacity(cfg.capacity)
	simSvc := similarityuc.New(repo).WithThresholds(cfg.thresholds)
	healthSvc := healthuc.New(store, repo).WithCapacity(cfg.capacity)

	return &Client{
		store:       store,
		questionSvc: questionSvc,
		simSvc:      simSvc,
		healthSvc:   healthSvc,
		capacity:    cfg.capacity,
		obs:         obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks backend connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Capacity returns the configured corpus size limit (0 = unbounded).
func (c *Client) Capacity() int { return c.capacity }

// Questions returns the corpus management service.
func (c *Client) Questions() *QuestionService {
	return &QuestionService{svc: c.questionSvc, obs: c.obs}
}

// Similarity returns the duplicate detection service.
func (c *Client) Similarity() *SimilarityService {
	return &SimilarityService{svc: c.simSvc, obs: c.obs}
}
