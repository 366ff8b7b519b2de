package catalog

import (
	"slices"
	"strings"
	"testing"
	"time"

	"moviesearch/internal/core/movie"
	perr "moviesearch/internal/platform/errors"
)

func TestNew_CopiesInput(t *testing.T) {
	in := []movie.Movie{
		{Title: movie.Str("Up")},
		{Title: movie.Str("Cube")},
	}
	c := New(in)
	in[0] = movie.Movie{Title: movie.Str("Changed")}

	got := slices.Collect(c.All())
	if *got[0].Title != "Up" {
		t.Fatalf("catalog observed caller write: %q", *got[0].Title)
	}

	out := c.Movies()
	out[1] = movie.Movie{}
	if *slices.Collect(c.All())[1].Title != "Cube" {
		t.Fatalf("Movies() must return a copy")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d", c.Len())
	}
}

func TestFacets(t *testing.T) {
	c := New([]movie.Movie{
		{MPAARating: movie.Str("R"), MajorGenre: movie.Str("Horror")},
		{MPAARating: movie.Str("PG"), MajorGenre: movie.Str("Comedy")},
		{MPAARating: nil, MajorGenre: movie.Str("Horror")},
		{MPAARating: movie.Str("R")},
	})
	if got := c.MPAARatings(); !slices.Equal(got, []string{"PG", "R"}) {
		t.Fatalf("MPAARatings = %v", got)
	}
	if got := c.Genres(); !slices.Equal(got, []string{"Comedy", "Horror"}) {
		t.Fatalf("Genres = %v", got)
	}

	g := c.Genres()
	g[0] = "x"
	if c.Genres()[0] != "Comedy" {
		t.Fatalf("Genres() must return a copy")
	}
}

func TestNew_EmptyAndOptions(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := New(nil, WithSource("memory"), WithLoadedAt(at))
	if c.Len() != 0 || len(c.MPAARatings()) != 0 || len(c.Genres()) != 0 {
		t.Fatalf("empty catalog not empty")
	}
	if c.Source() != "memory" || !c.LoadedAt().Equal(at) {
		t.Fatalf("options not applied: %q %v", c.Source(), c.LoadedAt())
	}
	if c.ID() == New(nil).ID() {
		t.Fatalf("catalog ids should be unique")
	}
}

func TestReadJSON(t *testing.T) {
	const doc = `[
	  {"Title": "Up", "MPAA Rating": "PG", "Major Genre": "Adventure", "IMDB Rating": 8.3, "Rotten Tomatoes Rating": 98, "Director": "Pete Docter"},
	  {"Title": null, "MPAA Rating": "PG", "Major Genre": null, "IMDB Rating": 7.0, "Rotten Tomatoes Rating": null},
	  {"Title": 12, "MPAA Rating": null}
	]`
	_, err := ReadJSON(strings.NewReader(doc))
	if err == nil {
		t.Fatalf("expected type error for numeric title")
	}
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("code = %v, want JSON", perr.CodeOf(err))
	}

	const ok = `[
	  {"Title": "Up", "MPAA Rating": "PG", "Major Genre": "Adventure", "IMDB Rating": 8.3, "Rotten Tomatoes Rating": 98, "Director": "Pete Docter"},
	  {"Title": null, "MPAA Rating": "PG", "Major Genre": null, "IMDB Rating": 7.0, "Rotten Tomatoes Rating": null}
	]`
	c, err := ReadJSON(strings.NewReader(ok), WithSource("inline"))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	ms := c.Movies()
	if len(ms) != 2 {
		t.Fatalf("len = %d", len(ms))
	}
	up := ms[0]
	if *up.Title != "Up" || *up.MPAARating != "PG" || *up.MajorGenre != "Adventure" || *up.IMDBRating != 8.3 || *up.RottenTomatoesRating != 98 {
		t.Fatalf("unexpected first record: %+v", up)
	}
	anon := ms[1]
	if anon.Title != nil || anon.MajorGenre != nil || anon.RottenTomatoesRating != nil {
		t.Fatalf("nulls should decode to nil: %+v", anon)
	}
	if c.Source() != "inline" {
		t.Fatalf("source = %q", c.Source())
	}
}

func TestCatalog_SearchEndToEnd(t *testing.T) {
	c := New([]movie.Movie{
		{Title: movie.Str("Up"), MPAARating: movie.Str("PG"), IMDBRating: movie.Num(8.3)},
		{Title: movie.Str("Cube"), MPAARating: movie.Str("R"), IMDBRating: movie.Num(6.8)},
		{Title: nil, MPAARating: movie.Str("PG"), IMDBRating: movie.Num(7.0)},
	})
	got := slices.Collect(movie.Search(c.All(), movie.Criteria{MPAARatings: []string{"PG"}, IMDB: movie.Range{Min: movie.Num(8.0)}}))
	if len(got) != 1 || *got[0].Title != "Up" {
		t.Fatalf("unexpected result %+v", got)
	}
	if c.Len() != 3 {
		t.Fatalf("catalog changed by search")
	}
}
