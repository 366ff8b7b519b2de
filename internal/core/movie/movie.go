// Package movie holds the movie record, the search criteria and the query engine
// that narrows a catalog down to the movies matching every active criterion
package movie

// Movie is an immutable catalog record; nil fields are unknown values
type Movie struct {
	Title                *string  `json:"title"`
	MPAARating           *string  `json:"mpaa_rating"`
	MajorGenre           *string  `json:"major_genre"`
	IMDBRating           *float64 `json:"imdb_rating"`
	RottenTomatoesRating *float64 `json:"rotten_tomatoes_rating"`
}

// Range is an inclusive numeric window with independently optional bounds
// the zero value is inactive
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Active reports whether at least one bound is set
func (r Range) Active() bool { return r.Min != nil || r.Max != nil }

// Contains reports whether v is known and within the bounds
// unknown and NaN values never match
func (r Range) Contains(v *float64) bool {
	if v == nil {
		return false
	}
	if r.Min != nil && !(*v >= *r.Min) {
		return false
	}
	if r.Max != nil && !(*v <= *r.Max) {
		return false
	}
	return true
}

// Criteria is the set of optional filters for one query
// empty fields do not filter
type Criteria struct {
	SearchTerms    string   `json:"search_terms,omitempty"`
	MPAARatings    []string `json:"mpaa_ratings,omitempty"`
	Genres         []string `json:"genres,omitempty"`
	IMDB           Range    `json:"imdb"`
	RottenTomatoes Range    `json:"rotten_tomatoes"`
}

// IsZero reports whether no criterion is active
func (c Criteria) IsZero() bool {
	return !hasTerms(c.SearchTerms) &&
		len(c.MPAARatings) == 0 &&
		len(c.Genres) == 0 &&
		!c.IMDB.Active() &&
		!c.RottenTomatoes.Active()
}

// Str returns a pointer to s, handy for building records
func Str(s string) *string { return &s }

// Num returns a pointer to f, handy for building records and bounds
func Num(f float64) *float64 { return &f }
