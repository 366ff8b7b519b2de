//go:build integration_pg

package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"moviesearch/internal/modkit/repokit"
	"moviesearch/internal/platform/logger"
	"moviesearch/internal/platform/store"
	"moviesearch/internal/services/catalog/repo"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schema = `
create table movies (
  id                     serial primary key,
  title                  text,
  mpaa_rating            text,
  major_genre            text,
  imdb_rating            double precision,
  rotten_tomatoes_rating double precision
);
insert into movies (title, mpaa_rating, major_genre, imdb_rating, rotten_tomatoes_rating) values
  ('Up', 'PG', 'Adventure', 8.3, 98),
  ('Cube', 'R', 'Horror', 7.2, null),
  (null, null, null, null, null);`

func openStore(t *testing.T) *store.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "movies",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	st, err := store.Open(ctx, store.Config{
		AppName: "moviesearch-repo-test",
		PG: store.PGConfig{
			Enabled:  true,
			URL:      fmt.Sprintf("postgres://postgres:postgres@%s:%s/movies?sslmode=disable", host, port.Port()),
			MaxConns: 2,
		},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return st
}

func TestRepo_All(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	err := repokit.WithSnapshot(ctx, st.PG, repo.NewPG(), func(r repo.Repo) error {
		ms, err := r.All(ctx)
		if err != nil {
			return err
		}
		if len(ms) != 3 {
			t.Fatalf("len = %d", len(ms))
		}
		if *ms[0].Title != "Up" || *ms[0].RottenTomatoesRating != 98 {
			t.Fatalf("first = %+v", ms[0])
		}
		if ms[1].RottenTomatoesRating != nil || ms[2].Title != nil {
			t.Fatalf("nulls not kept: %+v %+v", ms[1], ms[2])
		}
		n, err := r.Count(ctx)
		if err != nil || n != 3 {
			t.Fatalf("count = %d %v", n, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
}
