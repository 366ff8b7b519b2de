package movie

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"testing"

	"golang.org/x/text/language"
)

// scenario catalog: Up, Cube and an untitled PG movie
func scenario() []Movie {
	return []Movie{
		{Title: Str("Up"), MPAARating: Str("PG"), IMDBRating: Num(8.3)},
		{Title: Str("Cube"), MPAARating: Str("R"), IMDBRating: Num(6.8)},
		{Title: nil, MPAARating: Str("PG"), IMDBRating: Num(7.0)},
	}
}

func titles(ms []Movie) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		if m.Title == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, *m.Title)
	}
	return out
}

func run(c Criteria, ms []Movie) []Movie {
	return slices.Collect(Search(slices.Values(ms), c))
}

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{name: "no criteria", c: Criteria{}, want: []string{"Up", "Cube", "<nil>"}},
		{name: "search u", c: Criteria{SearchTerms: "u"}, want: []string{"Up", "Cube"}},
		{name: "search U upper", c: Criteria{SearchTerms: "UP"}, want: []string{"Up"}},
		{name: "imdb min 7", c: Criteria{IMDB: Range{Min: Num(7.0)}}, want: []string{"Up", "<nil>"}},
		{name: "imdb max 7", c: Criteria{IMDB: Range{Max: Num(7.0)}}, want: []string{"Cube", "<nil>"}},
		{name: "imdb both", c: Criteria{IMDB: Range{Min: Num(6.8), Max: Num(7.0)}}, want: []string{"Cube", "<nil>"}},
		{name: "pg and imdb 8", c: Criteria{MPAARatings: []string{"PG"}, IMDB: Range{Min: Num(8.0)}}, want: []string{"Up"}},
		{name: "mpaa R", c: Criteria{MPAARatings: []string{"R"}}, want: []string{"Cube"}},
		{name: "empty mpaa set", c: Criteria{MPAARatings: []string{}}, want: []string{"Up", "Cube", "<nil>"}},
		{name: "min above max", c: Criteria{IMDB: Range{Min: Num(9), Max: Num(1)}}, want: []string{}},
		{name: "blank terms skip", c: Criteria{SearchTerms: "   "}, want: []string{"Up", "Cube", "<nil>"}},
		{name: "rotten active excludes unknown", c: Criteria{RottenTomatoes: Range{Min: Num(0)}}, want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := titles(run(tc.c, scenario()))
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Search = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterByGenre(t *testing.T) {
	ms := []Movie{
		{Title: Str("A"), MajorGenre: Str("Drama")},
		{Title: Str("B"), MajorGenre: Str("Comedy")},
		{Title: Str("C")},
		{Title: Str("D"), MajorGenre: Str("drama")},
	}
	got := titles(slices.Collect(FilterByGenre(slices.Values(ms), []string{"Drama", "Horror"})))
	if !slices.Equal(got, []string{"A"}) {
		t.Fatalf("FilterByGenre = %v, want [A] (exact match only)", got)
	}
	if n := len(slices.Collect(FilterByGenre(slices.Values(ms), nil))); n != len(ms) {
		t.Fatalf("nil genres should pass everything, got %d", n)
	}
}

func TestFilterByRottenTomatoesRating(t *testing.T) {
	ms := []Movie{
		{Title: Str("low"), RottenTomatoesRating: Num(10)},
		{Title: Str("mid"), RottenTomatoesRating: Num(50)},
		{Title: Str("high"), RottenTomatoesRating: Num(95)},
		{Title: Str("unknown")},
	}
	cases := []struct {
		r    Range
		want []string
	}{
		{Range{}, []string{"low", "mid", "high", "unknown"}},
		{Range{Min: Num(50)}, []string{"mid", "high"}},
		{Range{Max: Num(50)}, []string{"low", "mid"}},
		{Range{Min: Num(10), Max: Num(95)}, []string{"low", "mid", "high"}},
		{Range{Min: Num(11), Max: Num(94)}, []string{"mid"}},
	}
	for _, c := range cases {
		got := titles(slices.Collect(FilterByRottenTomatoesRating(slices.Values(ms), c.r)))
		if !slices.Equal(got, c.want) {
			t.Errorf("range %+v: got %v want %v", c.r, got, c.want)
		}
	}
}

func TestRange_NaNNeverMatches(t *testing.T) {
	nan := math.NaN()
	if (Range{Min: Num(0)}).Contains(&nan) {
		t.Fatalf("NaN must not satisfy a min bound")
	}
	if (Range{Max: Num(10)}).Contains(&nan) {
		t.Fatalf("NaN must not satisfy a max bound")
	}
	if (Range{Min: Num(1)}).Contains(nil) {
		t.Fatalf("nil must not match")
	}
}

func TestSearch_ZeroAndNegativeBounds(t *testing.T) {
	ms := []Movie{
		{Title: Str("zero"), IMDBRating: Num(0)},
		{Title: Str("neg"), IMDBRating: Num(-1)},
	}
	got := titles(run(Criteria{IMDB: Range{Min: Num(0)}}, ms))
	if !slices.Equal(got, []string{"zero"}) {
		t.Fatalf("min 0 = %v, want [zero]", got)
	}
	got = titles(run(Criteria{IMDB: Range{Max: Num(-1)}}, ms))
	if !slices.Equal(got, []string{"neg"}) {
		t.Fatalf("max -1 = %v, want [neg]", got)
	}
}

func TestSearch_LocaleAwareTitles(t *testing.T) {
	ms := []Movie{
		{Title: Str("İstanbul")},
		{Title: Str("Isparta")},
	}
	search := func(e *Engine, terms string) []string {
		return titles(slices.Collect(e.Search(slices.Values(ms), Criteria{SearchTerms: terms})))
	}

	tr := NewEngine(language.Turkish)
	if got := search(tr, "ıs"); !slices.Equal(got, []string{"Isparta"}) {
		t.Fatalf("turkish dotless search = %v, want [Isparta]", got)
	}
	if got := search(tr, "İS"); !slices.Equal(got, []string{"İstanbul"}) {
		t.Fatalf("turkish dotted search = %v, want [İstanbul]", got)
	}

	en := NewEngine(language.English)
	if got := search(en, "ISP"); !slices.Equal(got, []string{"Isparta"}) {
		t.Fatalf("english search = %v, want [Isparta]", got)
	}
	if got := search(en, "ıs"); len(got) != 0 {
		t.Fatalf("english dotless search = %v, want none", got)
	}
	if en.Locale() != language.English {
		t.Fatalf("Locale() = %v", en.Locale())
	}
}

func TestSearch_DoesNotMutateSource(t *testing.T) {
	ms := scenario()
	before := fmt.Sprintf("%v", titles(ms))
	_ = run(Criteria{SearchTerms: "cube", MPAARatings: []string{"R"}}, ms)
	if after := fmt.Sprintf("%v", titles(ms)); after != before {
		t.Fatalf("source changed: %s -> %s", before, after)
	}
	if len(ms) != 3 {
		t.Fatalf("source length changed: %d", len(ms))
	}
}

func TestSearch_IsLazy(t *testing.T) {
	pulled := 0
	src := func(yield func(Movie) bool) {
		for _, m := range scenario() {
			pulled++
			if !yield(m) {
				return
			}
		}
	}

	seq := Search(src, Criteria{MPAARatings: []string{"PG"}})
	if pulled != 0 {
		t.Fatalf("Search pulled %d movies before iteration", pulled)
	}
	for range seq {
		break
	}
	if pulled != 1 {
		t.Fatalf("pulled %d movies for the first match, want 1", pulled)
	}
}

func TestCriteria_IsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Fatalf("zero criteria should be zero")
	}
	if !(Criteria{SearchTerms: " ", Genres: []string{}}).IsZero() {
		t.Fatalf("blank criteria should be zero")
	}
	if (Criteria{RottenTomatoes: Range{Max: Num(3)}}).IsZero() {
		t.Fatalf("range criteria should not be zero")
	}
}

// randomized properties over a generated catalog

var (
	sampleTitles = []string{"Up", "Cube", "Jaws", "The Cube", "UPSIDE", "Alien", "Aliens", "jaws 2"}
	sampleMPAA   = []string{"G", "PG", "PG-13", "R", "NC-17", "Not Rated"}
	sampleGenres = []string{"Drama", "Comedy", "Horror", "Action", "Musical"}
)

func genCatalog(r *rand.Rand, n int) []Movie {
	pickS := func(vals []string) *string {
		if r.Intn(5) == 0 {
			return nil
		}
		return Str(vals[r.Intn(len(vals))])
	}
	pickF := func(scale float64) *float64 {
		if r.Intn(5) == 0 {
			return nil
		}
		return Num(math.Round(r.Float64()*scale*10) / 10)
	}
	out := make([]Movie, n)
	for i := range out {
		out[i] = Movie{
			Title:                pickS(sampleTitles),
			MPAARating:           pickS(sampleMPAA),
			MajorGenre:           pickS(sampleGenres),
			IMDBRating:           pickF(10),
			RottenTomatoesRating: pickF(100),
		}
	}
	return out
}

func genCriteria(r *rand.Rand) Criteria {
	var c Criteria
	if r.Intn(2) == 0 {
		c.SearchTerms = []string{"u", "CUBE", "jaw", "alien", "x"}[r.Intn(5)]
	}
	if r.Intn(2) == 0 {
		c.MPAARatings = []string{sampleMPAA[r.Intn(len(sampleMPAA))], sampleMPAA[r.Intn(len(sampleMPAA))]}
	}
	if r.Intn(2) == 0 {
		c.Genres = []string{sampleGenres[r.Intn(len(sampleGenres))]}
	}
	if r.Intn(2) == 0 {
		c.IMDB.Min = Num(float64(r.Intn(10)))
	}
	if r.Intn(2) == 0 {
		c.IMDB.Max = Num(float64(r.Intn(10)))
	}
	if r.Intn(2) == 0 {
		c.RottenTomatoes.Min = Num(float64(r.Intn(100)))
	}
	if r.Intn(2) == 0 {
		c.RottenTomatoes.Max = Num(float64(r.Intn(100)))
	}
	return c
}

func TestSearch_SequentialEqualsFused(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	e := NewEngine(language.English)
	for i := 0; i < 300; i++ {
		ms := genCatalog(r, 40)
		c := genCriteria(r)

		seq := slices.Collect(e.Search(slices.Values(ms), c))

		match := e.Compile(c)
		var fused []Movie
		for _, m := range ms {
			if match(m) {
				fused = append(fused, m)
			}
		}
		if !slices.Equal(titles(seq), titles(fused)) || len(seq) != len(fused) {
			t.Fatalf("criteria %+v: sequential %v != fused %v", c, titles(seq), titles(fused))
		}
	}
}

func TestSearch_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		ms := genCatalog(r, 30)

		// default criteria returns everything in order
		if got := run(Criteria{}, ms); len(got) != len(ms) {
			t.Fatalf("default criteria dropped movies: %d of %d", len(got), len(ms))
		}

		// text search soundness and completeness
		terms := []string{"u", "CUBE", "jaw"}[r.Intn(3)]
		got := run(Criteria{SearchTerms: terms}, ms)
		var want []Movie
		for _, m := range ms {
			if m.Title != nil && strings.Contains(strings.ToLower(*m.Title), strings.ToLower(terms)) {
				want = append(want, m)
			}
		}
		if !slices.Equal(titles(got), titles(want)) {
			t.Fatalf("search %q: got %v want %v", terms, titles(got), titles(want))
		}

		// exact MPAA containment
		set := []string{"PG", "R"}
		got = run(Criteria{MPAARatings: set}, ms)
		want = want[:0]
		for _, m := range ms {
			if m.MPAARating != nil && slices.Contains(set, *m.MPAARating) {
				want = append(want, m)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("mpaa: got %d want %d", len(got), len(want))
		}

		// inclusive IMDB range
		lo, hi := 3.0, 7.5
		got = run(Criteria{IMDB: Range{Min: &lo, Max: &hi}}, ms)
		for _, m := range got {
			if m.IMDBRating == nil || *m.IMDBRating < lo || *m.IMDBRating > hi {
				t.Fatalf("imdb out of range: %v", m.IMDBRating)
			}
		}
		n := 0
		for _, m := range ms {
			if m.IMDBRating != nil && *m.IMDBRating >= lo && *m.IMDBRating <= hi {
				n++
			}
		}
		if n != len(got) {
			t.Fatalf("imdb range: got %d want %d", len(got), n)
		}
	}
}

func TestSearch_FilterOrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	e := NewEngine(language.English)
	for i := 0; i < 100; i++ {
		ms := genCatalog(r, 40)
		c := genCriteria(r)

		reversed := slices.Values(ms)
		reversed = FilterByRottenTomatoesRating(reversed, c.RottenTomatoes)
		reversed = FilterByIMDBRating(reversed, c.IMDB)
		reversed = FilterByGenre(reversed, c.Genres)
		reversed = FilterByMPAARating(reversed, c.MPAARatings)
		reversed = e.FilterBySearchTerms(reversed, c.SearchTerms)

		a := titles(slices.Collect(e.Search(slices.Values(ms), c)))
		b := titles(slices.Collect(reversed))
		if !slices.Equal(a, b) {
			t.Fatalf("order dependent result for %+v: %v vs %v", c, a, b)
		}
	}
}

func TestSearch_ConcurrentQueriesShareCatalog(t *testing.T) {
	ms := genCatalog(rand.New(rand.NewSource(1)), 500)
	e := NewEngine(language.English)
	c := Criteria{SearchTerms: "cube", IMDB: Range{Min: Num(2)}}
	want := len(slices.Collect(e.Search(slices.Values(ms), c)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if got := len(slices.Collect(e.Search(slices.Values(ms), c))); got != want {
					t.Errorf("concurrent result %d, want %d", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
