package movie

import (
	"iter"
	"strings"

	"moviesearch/internal/core/normalize"

	"golang.org/x/text/language"
)

// Engine applies Criteria to a movie sequence
// it keeps no per query state and is safe for concurrent use
type Engine struct {
	folder *normalize.Folder
}

// NewEngine constructs an Engine whose title search follows the casing rules of tag
func NewEngine(tag language.Tag) *Engine {
	return &Engine{folder: normalize.New(tag)}
}

var defaultEngine = NewEngine(language.English)

// Search narrows movies with the English title matcher
func Search(movies iter.Seq[Movie], c Criteria) iter.Seq[Movie] {
	return defaultEngine.Search(movies, c)
}

// Locale returns the language used for title matching
func (e *Engine) Locale() language.Tag { return e.folder.Tag() }

// Search applies every active filter in turn: title, MPAA rating, genre,
// IMDB rating then Rotten Tomatoes rating
// the result is lazy and keeps the relative order of movies
func (e *Engine) Search(movies iter.Seq[Movie], c Criteria) iter.Seq[Movie] {
	movies = e.FilterBySearchTerms(movies, c.SearchTerms)
	movies = FilterByMPAARating(movies, c.MPAARatings)
	movies = FilterByGenre(movies, c.Genres)
	movies = FilterByIMDBRating(movies, c.IMDB)
	movies = FilterByRottenTomatoesRating(movies, c.RottenTomatoes)
	return movies
}

// Compile fuses the active filters of c into a single predicate
// Compile(c)(m) holds exactly for the movies Search(_, c) yields
func (e *Engine) Compile(c Criteria) func(Movie) bool {
	var preds []func(Movie) bool
	if hasTerms(c.SearchTerms) {
		preds = append(preds, e.titleMatcher(c.SearchTerms))
	}
	if len(c.MPAARatings) > 0 {
		preds = append(preds, memberOf(c.MPAARatings, func(m Movie) *string { return m.MPAARating }))
	}
	if len(c.Genres) > 0 {
		preds = append(preds, memberOf(c.Genres, func(m Movie) *string { return m.MajorGenre }))
	}
	if c.IMDB.Active() {
		r := c.IMDB
		preds = append(preds, func(m Movie) bool { return r.Contains(m.IMDBRating) })
	}
	if c.RottenTomatoes.Active() {
		r := c.RottenTomatoes
		preds = append(preds, func(m Movie) bool { return r.Contains(m.RottenTomatoesRating) })
	}
	return func(m Movie) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

// FilterBySearchTerms keeps movies whose title contains terms ignoring case
// blank terms leave the sequence untouched, movies without a title included
func (e *Engine) FilterBySearchTerms(movies iter.Seq[Movie], terms string) iter.Seq[Movie] {
	if !hasTerms(terms) {
		return movies
	}
	return where(movies, e.titleMatcher(terms))
}

// FilterByMPAARating keeps movies rated with one of ratings
func FilterByMPAARating(movies iter.Seq[Movie], ratings []string) iter.Seq[Movie] {
	if len(ratings) == 0 {
		return movies
	}
	return where(movies, memberOf(ratings, func(m Movie) *string { return m.MPAARating }))
}

// FilterByGenre keeps movies whose major genre is one of genres
func FilterByGenre(movies iter.Seq[Movie], genres []string) iter.Seq[Movie] {
	if len(genres) == 0 {
		return movies
	}
	return where(movies, memberOf(genres, func(m Movie) *string { return m.MajorGenre }))
}

// FilterByIMDBRating keeps movies with a known IMDB rating inside r
func FilterByIMDBRating(movies iter.Seq[Movie], r Range) iter.Seq[Movie] {
	if !r.Active() {
		return movies
	}
	return where(movies, func(m Movie) bool { return r.Contains(m.IMDBRating) })
}

// FilterByRottenTomatoesRating keeps movies with a known Rotten Tomatoes rating inside r
func FilterByRottenTomatoesRating(movies iter.Seq[Movie], r Range) iter.Seq[Movie] {
	if !r.Active() {
		return movies
	}
	return where(movies, func(m Movie) bool { return r.Contains(m.RottenTomatoesRating) })
}

func (e *Engine) titleMatcher(terms string) func(Movie) bool {
	needle := e.folder.Fold(terms)
	return func(m Movie) bool {
		return m.Title != nil && strings.Contains(e.folder.Fold(*m.Title), needle)
	}
}

// memberOf builds an exact match set once per query
func memberOf(values []string, field func(Movie) *string) func(Movie) bool {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(m Movie) bool {
		v := field(m)
		if v == nil {
			return false
		}
		_, ok := set[*v]
		return ok
	}
}

// where is a lazy filtered view over seq
func where(seq iter.Seq[Movie], keep func(Movie) bool) iter.Seq[Movie] {
	return func(yield func(Movie) bool) {
		for m := range seq {
			if keep(m) && !yield(m) {
				return
			}
		}
	}
}

func hasTerms(s string) bool { return strings.TrimSpace(s) != "" }
