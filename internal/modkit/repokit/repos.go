// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"moviesearch/internal/platform/store"
)

// Queryer is the minimal read surface SQL repos are written against
type Queryer = store.RowQuerier

// TxRunner adds snapshot reads on top of Queryer
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row
)

// WithSnapshot binds a repo inside a consistent read and runs fn with it
func WithSnapshot[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Snapshot(ctx, func(q Queryer) error {
		return fn(MustBind(b, q))
	})
}
