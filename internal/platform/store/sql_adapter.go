package store

import (
	"context"
	"errors"
	"time"

	"modhook/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is what pgxpool.Pool and pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// traced is a RowQuerier over pgx that reports each statement to tracer.
// A negative slow never marks a statement slow
type traced struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slow   time.Duration
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	done := t.start(ctx, sql, args)
	tag, err := t.q.Exec(ctx, sql, args...)
	done(err)
	return tag, err
}

func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	done := t.start(ctx, sql, args)
	rows, err := t.q.Query(ctx, sql, args...)
	done(err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// QueryRow reports once Scan has run, since pgx defers the error until then
func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return scanHook{row: t.q.QueryRow(ctx, sql, args...), done: t.start(ctx, sql, args)}
}

func (t traced) start(ctx context.Context, sql string, args []any) func(error) {
	if t.tracer == nil {
		return func(error) {}
	}
	began := time.Now()
	return func(err error) {
		took := time.Since(began)
		t.tracer.OnQuery(ctx, pg.QueryEvent{
			SQL:       sql,
			Args:      args,
			ElapsedUS: took.Microseconds(),
			Err:       err,
			Slow:      t.slow >= 0 && took >= t.slow,
		})
	}
}

type scanHook struct {
	row  pgx.Row
	done func(error)
}

func (s scanHook) Scan(dst ...any) error {
	err := s.row.Scan(dst...)
	s.done(err)
	return err
}

// pool is the TxRunner behind Store.PG
type pool struct {
	traced
	pg *pg.PG
}

func newPool(p *pg.PG) *pool {
	slow := time.Duration(p.SlowMs) * time.Millisecond
	return &pool{traced: traced{q: p.Pool, tracer: p.Tracer, slow: slow}, pg: p}
}

func (p *pool) Ping(ctx context.Context) error {
	if p == nil || p.pg == nil {
		return errors.New("pg: not open")
	}
	var one int
	return p.QueryRow(ctx, "select 1").Scan(&one)
}

func (p *pool) Close() error {
	p.pg.Close()
	return nil
}

func (p *pool) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := p.pg.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(traced{q: tx, tracer: p.tracer, slow: p.slow}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
