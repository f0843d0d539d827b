// Package store opens and guards the optional storage backends
package store

import (
	"context"
	"errors"
	"fmt"

	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/logger"
	mongox "modhook/internal/platform/store/mongo"

	goredis "github.com/redis/go-redis/v9"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; callers Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the SQL surface gateways are written against
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn in a transaction; an error from fn rolls it back
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Store holds whichever backends were enabled. Disabled ones stay nil
type Store struct {
	Log logger.Logger

	PG    TxRunner
	Mongo *mongox.Client
	Redis goredis.UniversalClient
}

// Option configures Open
type Option func(*Store)

// WithLogger is the logger handed to the backend clients
func WithLogger(log logger.Logger) Option { return func(s *Store) { s.Log = log } }

var (
	openPGFn    = openPG
	openMongoFn = openMongo
	openRedisFn = openRedis
)

// Open connects the backends cfg enables. When one fails the ones already
// open are closed again
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}

	steps := []struct {
		on   bool
		open func() error
	}{
		{cfg.PG.Enabled, func() (err error) { s.PG, err = openPGFn(ctx, cfg, s); return err }},
		{cfg.Mongo.Enabled, func() (err error) { s.Mongo, err = openMongoFn(ctx, cfg); return err }},
		{cfg.Redis.Enabled, func() (err error) { s.Redis, err = openRedisFn(ctx, cfg); return err }},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := st.open(); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

// backend is one open client seen through what Guard and Close need
type backend struct {
	name  string
	ping  func(context.Context) error
	close func(context.Context) error
}

func (s *Store) backends() []backend {
	var out []backend
	if s.PG != nil {
		b := backend{name: "pg"}
		if p, ok := s.PG.(Pinger); ok {
			b.ping = p.Ping
		}
		if c, ok := s.PG.(interface{ Close() error }); ok {
			b.close = func(context.Context) error { return c.Close() }
		}
		out = append(out, b)
	}
	if mc := s.Mongo; mc != nil {
		out = append(out, backend{name: "mongo", ping: mc.Ping, close: mc.Close})
	}
	if rdb := s.Redis; rdb != nil {
		out = append(out, backend{
			name:  "redis",
			ping:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			close: func(context.Context) error { return rdb.Close() },
		})
	}
	return out
}

// Guard pings every open backend and joins the failures, each prefixed
// with the backend name
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return perr.Unavailablef("store not opened")
	}
	var errs []error
	for _, b := range s.backends() {
		if b.ping == nil {
			continue
		}
		if err := b.ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes the open backends in reverse order of opening
func (s *Store) Close(ctx context.Context) error {
	bs := s.backends()
	var errs []error
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i].close == nil {
			continue
		}
		if err := bs[i].close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", bs[i].name, err))
		}
	}
	return errors.Join(errs...)
}
