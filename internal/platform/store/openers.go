package store

import (
	"cmp"
	"context"
	"fmt"
	"time"

	mongox "modhook/internal/platform/store/mongo"
	"modhook/internal/platform/store/pg"
	redisx "modhook/internal/platform/store/redis"

	goredis "github.com/redis/go-redis/v9"
)

const (
	pgRetries     = 20
	pgPingTimeout = 3 * time.Second
	pgBackoff     = 150 * time.Millisecond
	pgBackoffMax  = 2 * time.Second
)

// openPG builds the pool and waits for postgres to answer, which it may not
// yet do while a compose stack is starting
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}

	retries := cmp.Or(max(cfg.PG.ConnectRetries, 0), pgRetries)
	timeout := cmp.Or(max(cfg.PG.PingTimeout, 0), pgPingTimeout)
	wait := pgBackoff
	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = p.Pool.Ping(pingCtx) // untraced
		cancel()
		if lastErr == nil {
			return newPool(p), nil
		}
		s.Log.Warn().Err(lastErr).Int("attempt", attempt).Msg("postgres not ready")

		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait = min(2*wait, pgBackoffMax)
	}
	p.Close()
	return nil, fmt.Errorf("postgres did not answer after %d attempts: %w", retries, lastErr)
}

func openMongo(ctx context.Context, cfg Config) (*mongox.Client, error) {
	return mongox.Open(ctx, mongox.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  cfg.AppName,
		Timeout:  cfg.Mongo.Timeout,
	})
}

func openRedis(ctx context.Context, cfg Config) (goredis.UniversalClient, error) {
	return redisx.Open(ctx, redisx.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		Password:   cfg.Redis.Password,
		ClientName: cfg.AppName,
	})
}
