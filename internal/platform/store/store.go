// Package store is the storage facade. Postgres is the only backend and it is optional.
package store

import (
	"context"
	"errors"
	"fmt"

	"moviesearch/internal/platform/logger"
)

// Store holds the opened backends. The zero value is safe and has none.
type Store struct {
	// Log is the logger handed to subclients; zero value is a no-op logger
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG TxRunner
}

// Row is the scan contract of a single row
type Row interface {
	Scan(dest ...any) error
}

// Rows is the iteration contract of a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a statement did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the SQL surface repos are written against
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner adds consistent reads on top of RowQuerier
type TxRunner interface {
	RowQuerier
	// Snapshot runs fn in a read-only repeatable-read transaction, so every
	// query in fn sees the same committed state
	Snapshot(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the backends enabled in cfg
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("app", cfg.AppName).Logger()

	if cfg.PG.Enabled {
		pg, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = pg
	}
	return s, nil
}

// Guard pings every configured backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close releases every opened backend
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
