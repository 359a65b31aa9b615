// Package backend opens the corpus storage selected by a driver name.
package backend

import (
	"context"
	"fmt"
	"time"

	dbRedis "github.com/kailas-cloud/dupecheck/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/dupecheck/internal/db/sqlite"
	questionrepo "github.com/kailas-cloud/dupecheck/internal/repository/question"
	questionuc "github.com/kailas-cloud/dupecheck/internal/usecase/question"
)

// Drivers.
const (
	DriverValkey = "valkey"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config selects and parameterizes a backend.
type Config struct {
	Driver           string
	Addrs            []string
	Password         string
	Path             string
	KeyPrefix        string
	ReadinessTimeout time.Duration
}

// Backend is an opened corpus store.
type Backend struct {
	Driver     string
	Repository questionuc.Repository
	pinger     func(ctx context.Context) error
	closer     func()
}

// Ping checks the underlying store.
func (b *Backend) Ping(ctx context.Context) error {
	if b.pinger == nil {
		return nil
	}
	return b.pinger(ctx)
}

// Close releases the underlying store.
func (b *Backend) Close() {
	if b.closer != nil {
		b.closer()
	}
}

// Open connects to the configured driver and waits until it is ready.
func Open(ctx context.Context, cfg Config) (*Backend, error) {
	timeout := cfg.ReadinessTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	switch cfg.Driver {
	case DriverValkey, DriverRedis, "":
		driver := cfg.Driver
		if driver == "" {
			driver = DriverValkey
		}
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", driver, err)
		}
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("%s not ready: %w", driver, err)
		}
		return &Backend{
			Driver:     driver,
			Repository: questionrepo.New(store, cfg.KeyPrefix),
			pinger:     store.Ping,
			closer:     store.Close,
		}, nil

	case DriverSQLite:
		store, err := dbSQLite.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("create sqlite store: %w", err)
		}
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("sqlite not ready: %w", err)
		}
		repo := questionrepo.NewSQL(store.DB())
		if err := repo.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return &Backend{
			Driver:     DriverSQLite,
			Repository: repo,
			pinger:     store.Ping,
			closer:     store.Close,
		}, nil

	case DriverMemory:
		return &Backend{Driver: DriverMemory, Repository: questionrepo.NewMemory()}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
