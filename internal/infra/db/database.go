package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"authentithief/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// LazyPool defers connecting until a Postgres-backed component asks for the
// pool, so memory-only deployments never dial the database.
type LazyPool struct {
	cfg config.DBConfig

	mu      sync.Mutex
	pool    *pgxpool.Pool
	cleanup func()
}

func NewLazyPool(cfg config.DBConfig) *LazyPool {
	return &LazyPool{cfg: cfg}
}

// Get returns the pool, connecting on first use. A failed attempt is retried
// by the next caller.
func (l *LazyPool) Get(ctx context.Context) (*pgxpool.Pool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		return l.pool, nil
	}

	pool, cleanup, err := Connect(ctx, l.cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("connected to database", "host", l.cfg.Host, "db", l.cfg.DBName)
	l.pool, l.cleanup = pool, cleanup
	return pool, nil
}

func (l *LazyPool) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cleanup != nil {
		l.cleanup()
		l.pool, l.cleanup = nil, nil
	}
}
