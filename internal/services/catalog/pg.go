package catalog

import (
	"context"
	"time"

	"moviesearch/internal/core/catalog"
	"moviesearch/internal/core/movie"
	"moviesearch/internal/modkit/repokit"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/logger"
	"moviesearch/internal/services/catalog/repo"
)

// sleep is a seam so tests skip the backoff
var sleep = func(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// PG loads the catalog from the movies table in one snapshot
type PG struct {
	DB       repokit.TxRunner
	Binder   repokit.Binder[repo.Repo] // defaults to repo.NewPG()
	Attempts int                       // default 5
	Backoff  time.Duration             // first retry delay, doubled each time, default 200ms
}

// Kind implements Source
func (p PG) Kind() string { return KindPG }

// Load reads every row, retrying transient postgres failures
func (p PG) Load(ctx context.Context) (*catalog.Catalog, error) {
	if p.DB == nil {
		return nil, perr.Unavailablef("postgres catalog source has no database")
	}
	b := p.Binder
	if b == nil {
		b = repo.NewPG()
	}
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 5
	}
	backoff := p.Backoff
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	log := logger.C(ctx)

	var (
		movies []movie.Movie
		err    error
	)
	for attempt := 1; ; attempt++ {
		err = repokit.WithSnapshot(ctx, p.DB, b, func(r repo.Repo) error {
			var qerr error
			movies, qerr = r.All(ctx)
			return qerr
		})
		if err == nil || attempt == attempts || !perr.IsRetryable(err) {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", backoff).Msg("catalog load retry")
		sleep(ctx, backoff)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	if err != nil {
		if _, ok := perr.As(err); !ok {
			err = perr.Wrap(err, perr.ErrorCodeUnavailable, "load catalog from postgres")
		}
		return nil, err
	}

	c := catalog.New(movies, catalog.WithSource(KindPG))
	log.Info().Int("movies", c.Len()).Str("snapshot", c.ID().String()).Msg("catalog loaded")
	return c, nil
}
