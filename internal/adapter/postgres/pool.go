package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/receptionist-backend/internal/config"
)

// applicationName tags backend sessions in pg_stat_activity.
const applicationName = "receptionist-backend"

// NewPool connects to PostgreSQL. Sessions run in UTC so appointment times
// round-trip unchanged. The first ping is retried until cfg.ConnectWait
// elapses, which covers a database container that is still starting.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	rt := poolCfg.ConnConfig.RuntimeParams
	rt["timezone"] = "UTC"
	if _, ok := rt["application_name"]; !ok {
		rt["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = cfg.ConnectWait
	policy.Reset()

	var retry backoff.BackOff = policy
	if cfg.ConnectWait <= 0 {
		retry = &backoff.StopBackOff{}
	}

	if err := backoff.Retry(func() error {
		return pool.Ping(ctx)
	}, backoff.WithContext(retry, ctx)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
