// Package catalog holds the read-only movie collection queries run against
package catalog

import (
	"iter"
	"slices"
	"time"

	"moviesearch/internal/core/movie"

	"github.com/google/uuid"
)

// Catalog is an ordered, immutable set of movies
// it is safe to share across goroutines once built
type Catalog struct {
	id       uuid.UUID
	loadedAt time.Time
	source   string

	movies []movie.Movie
	mpaa   []string
	genres []string
}

// Option tweaks catalog metadata at construction
type Option func(*Catalog)

// WithSource records where the movies came from (file path, "pg" ...)
func WithSource(src string) Option { return func(c *Catalog) { c.source = src } }

// WithLoadedAt overrides the load timestamp, mostly for tests
func WithLoadedAt(t time.Time) Option { return func(c *Catalog) { c.loadedAt = t } }

// New builds a Catalog from movies; the slice is copied so later writes by the caller are not observed
func New(movies []movie.Movie, opts ...Option) *Catalog {
	c := &Catalog{
		id:       uuid.New(),
		loadedAt: time.Now().UTC(),
		movies:   slices.Clone(movies),
	}
	for _, o := range opts {
		o(c)
	}
	if c.movies == nil {
		c.movies = []movie.Movie{}
	}
	c.mpaa = distinct(c.movies, func(m movie.Movie) *string { return m.MPAARating })
	c.genres = distinct(c.movies, func(m movie.Movie) *string { return m.MajorGenre })
	return c
}

// ID identifies this catalog snapshot
func (c *Catalog) ID() uuid.UUID { return c.id }

// LoadedAt is when the snapshot was built
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Source describes where the movies came from
func (c *Catalog) Source() string { return c.source }

// Len returns the number of movies
func (c *Catalog) Len() int { return len(c.movies) }

// All yields every movie in catalog order
func (c *Catalog) All() iter.Seq[movie.Movie] { return slices.Values(c.movies) }

// Movies returns a copy of the movies in catalog order
func (c *Catalog) Movies() []movie.Movie { return slices.Clone(c.movies) }

// MPAARatings returns the distinct known MPAA ratings, sorted
func (c *Catalog) MPAARatings() []string { return slices.Clone(c.mpaa) }

// Genres returns the distinct known major genres, sorted
func (c *Catalog) Genres() []string { return slices.Clone(c.genres) }

func distinct(ms []movie.Movie, field func(movie.Movie) *string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, m := range ms {
		v := field(m)
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	slices.Sort(out)
	return out
}
