// Package service runs movie searches against the loaded catalog
package service

import (
	"context"
	"iter"

	"moviesearch/internal/core/catalog"
	"moviesearch/internal/core/movie"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/services/api/movies/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Service defines the service contract for movies
type Service interface{ domain.ServicePort }

// Svc implements Service over an immutable catalog
type Svc struct {
	cat     *catalog.Catalog
	eng     *movie.Engine
	matched prometheus.Histogram
}

// New creates a movies service; reg may be nil
func New(cat *catalog.Catalog, eng *movie.Engine, reg prometheus.Registerer) *Svc {
	if cat == nil {
		panic("movies.Service requires a catalog")
	}
	if eng == nil {
		panic("movies.Service requires an engine")
	}
	s := &Svc{
		cat: cat,
		eng: eng,
		matched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moviesearch",
			Name:      "search_matches",
			Help:      "Movies returned per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if reg != nil {
		if err := reg.Register(s.matched); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				s.matched = are.ExistingCollector.(prometheus.Histogram)
			} else {
				panic(err)
			}
		}
	}
	return s
}

// Search returns the catalog movies matching every criterion in in, in catalog order
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Result, error) {
	seq := s.eng.Search(s.cat.All(), in.Criteria())
	out, err := collect(ctx, seq)
	if err != nil {
		return domain.Result{}, err
	}
	s.matched.Observe(float64(len(out)))
	return domain.Result{Movies: out, Snapshot: s.cat.ID().String()}, nil
}

// Facets lists the distinct MPAA ratings and genres
func (s *Svc) Facets(context.Context) (domain.Facets, error) {
	return domain.Facets{MPAARatings: s.cat.MPAARatings(), Genres: s.cat.Genres()}, nil
}

// checkEvery is how many matches are collected between context checks
const checkEvery = 1024

func collect(ctx context.Context, seq iter.Seq[movie.Movie]) ([]domain.Movie, error) {
	out := []domain.Movie{}
	n := 0
	for m := range seq {
		if n++; n%checkEvery == 0 && ctx.Err() != nil {
			return nil, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "search interrupted")
		}
		out = append(out, domain.FromMovie(m))
	}
	return out, nil
}
