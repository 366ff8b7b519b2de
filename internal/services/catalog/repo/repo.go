// Package repo reads catalog rows from postgres
package repo

import (
	"context"

	"moviesearch/internal/core/movie"
	"moviesearch/internal/modkit/repokit"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/store"
)

// Repo is the catalog read surface
type Repo interface {
	All(ctx context.Context) ([]movie.Movie, error)
	Count(ctx context.Context) (int64, error)
}

type queries struct{ q repokit.Queryer }

// NewPG returns a binder for the postgres implementation
func NewPG() repokit.Binder[Repo] {
	return repokit.BindFunc[Repo](func(q repokit.Queryer) Repo { return &queries{q: q} })
}

const selectMovies = `
select title, mpaa_rating, major_genre, imdb_rating, rotten_tomatoes_rating
from movies
order by id`

// All returns every movie in id order; NULL columns stay nil
func (r *queries) All(ctx context.Context) ([]movie.Movie, error) {
	ms, err := store.Many(ctx, r.q, scanMovie, selectMovies)
	if err != nil {
		return nil, perr.FromPostgres(err, "select movies")
	}
	return ms, nil
}

// Count returns the number of rows in movies
func (r *queries) Count(ctx context.Context) (int64, error) {
	n, err := store.Scalar[int64](ctx, r.q, `select count(*) from movies`)
	if err != nil {
		return 0, perr.FromPostgres(err, "count movies")
	}
	return n, nil
}

func scanMovie(row store.Row) (movie.Movie, error) {
	var m movie.Movie
	err := row.Scan(&m.Title, &m.MPAARating, &m.MajorGenre, &m.IMDBRating, &m.RottenTomatoesRating)
	return m, err
}
