// Package repokit is the seam between SQL gateways and the store
package repokit

import (
	"context"
	"fmt"

	"modhook/internal/platform/store"
)

type (
	// Queryer is what a bound gateway runs its statements on
	Queryer = store.RowQuerier

	// TxRunner is a Queryer that can also open a transaction
	TxRunner = store.TxRunner

	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Binder builds a gateway over a Queryer, either the pool or a tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind binds b to q. A nil q means the backend was selected but never
// opened, which is a wiring bug
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		var zero T
		panic(fmt.Sprintf("repokit: %T bound to a nil queryer", zero))
	}
	return b.Bind(q)
}

// WithTx runs fn in one transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// BeginHook runs first inside every transaction, on the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns inner with hooks run at the start of each Tx.
// Statements outside Tx go straight to inner
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hook := range h.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// MustGuard stops boot when a configured backend does not answer
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
