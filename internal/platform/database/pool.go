package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"aquaria/internal/platform/config"
)

const (
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
)

var errNotConfigured = errors.New("database not configured")

// Pool is the shared *sql.DB behind the PostgreSQL stores, opened with the
// pgx stdlib driver.
type Pool struct {
	db *sql.DB
}

// New opens the pool and waits for the server to answer. Containers started
// together with the service often accept connections a moment late, so the
// first ping is retried with a doubling backoff. An empty URL yields a nil
// pool and the caller uses the in-memory stores.
func New(ctx context.Context, cfg config.Database) (*Pool, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := waitForPing(ctx, db); err != nil {
		db.Close() //nolint:errcheck // nothing to report on a failed start
		return nil, err
	}
	return &Pool{db: db}, nil
}

func waitForPing(ctx context.Context, db *sql.DB) error {
	backoff := connectBackoff
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == connectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("ping database after %d attempts: %w", connectAttempts, err)
}

func (p *Pool) DB() *sql.DB {
	return p.db
}

// RegisterMetrics exposes connection pool statistics on reg.
func (p *Pool) RegisterMetrics(reg prometheus.Registerer) error {
	if p == nil || p.db == nil {
		return errNotConfigured
	}
	return reg.Register(collectors.NewDBStatsCollector(p.db, "aquaria"))
}

// Health is registered as a readiness check.
func (p *Pool) Health(ctx context.Context) error {
	if p == nil || p.db == nil {
		return errNotConfigured
	}
	return p.db.PingContext(ctx)
}

func (p *Pool) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}
