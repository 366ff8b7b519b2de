package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTestDB opens a client for tests, applies an optional pool mutator, and runs fn.
// The client is closed on test cleanup.
func WithTestDB(t *testing.T, dsn string, poolMut func(*pgxpool.Config), fn func(p *PG)) {
	t.Helper()
	client, err := Open(context.Background(), Config{URL: dsn}, nil, poolMut)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)
	fn(client)
}
