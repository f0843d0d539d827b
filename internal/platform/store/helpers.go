package store

import (
	"context"
	"fmt"

	perr "modhook/internal/platform/errors"
)

// ExecOne fails unless the statement affected exactly one row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if got := tag.RowsAffected(); got != 1 {
		return fmt.Errorf("store: %s affected %d rows", tag.String(), got)
	}
	return nil
}

// Scalar is for single value selects such as count(*)
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (v T, err error) {
	if err = q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		v = zero
	}
	return v, err
}

// Many collects scan over the whole result set
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (out []T, err error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, serr := scan(rows)
		if serr != nil {
			return nil, serr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// One expects a lookup by key: no row is perr.ErrNotFound and more than one
// is an error
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	all, err := Many(ctx, q, scan, sql, args...)
	if err != nil {
		return zero, err
	}
	switch len(all) {
	case 1:
		return all[0], nil
	case 0:
		return zero, perr.ErrNotFound
	default:
		return zero, fmt.Errorf("store: lookup matched %d rows", len(all))
	}
}
