// Package domain holds DTOs for the movies http and service contracts
package domain

import "moviesearch/internal/core/movie"

// SearchInput carries the filter form, from the query string on GET and the body on POST.
// Empty fields do not filter.
type SearchInput struct {
	Search    string   `query:"search"     json:"search,omitempty"     validate:"max=200" example:"up"`
	MPAA      []string `query:"mpaa"       json:"mpaa,omitempty"       validate:"max=20,dive,max=16" example:"PG,PG-13"`
	Genre     []string `query:"genre"      json:"genre,omitempty"      validate:"max=50,dive,max=64" example:"Adventure"`
	IMDBMin   *float64 `query:"imdb_min"   json:"imdb_min,omitempty"   validate:"omitempty,finite" example:"7"`
	IMDBMax   *float64 `query:"imdb_max"   json:"imdb_max,omitempty"   validate:"omitempty,finite" example:"9.5"`
	RottenMin *float64 `query:"rotten_min" json:"rotten_min,omitempty" validate:"omitempty,finite" example:"60"`
	RottenMax *float64 `query:"rotten_max" json:"rotten_max,omitempty" validate:"omitempty,finite"`
}

// Criteria converts the input to engine criteria
func (in SearchInput) Criteria() movie.Criteria {
	return movie.Criteria{
		SearchTerms:    in.Search,
		MPAARatings:    in.MPAA,
		Genres:         in.Genre,
		IMDB:           movie.Range{Min: in.IMDBMin, Max: in.IMDBMax},
		RottenTomatoes: movie.Range{Min: in.RottenMin, Max: in.RottenMax},
	}
}

// Movie is the wire form of a catalog entry; null means unknown
type Movie struct {
	Title                *string  `json:"title"                  example:"Up"`
	MPAARating           *string  `json:"mpaa_rating"            example:"PG"`
	MajorGenre           *string  `json:"major_genre"            example:"Adventure"`
	IMDBRating           *float64 `json:"imdb_rating"            example:"8.3"`
	RottenTomatoesRating *float64 `json:"rotten_tomatoes_rating" example:"98"`
}

// FromMovie maps an engine movie to its wire form
func FromMovie(m movie.Movie) Movie {
	return Movie{
		Title:                m.Title,
		MPAARating:           m.MPAARating,
		MajorGenre:           m.MajorGenre,
		IMDBRating:           m.IMDBRating,
		RottenTomatoesRating: m.RottenTomatoesRating,
	}
}

// MovieList is the data block of search responses
type MovieList struct {
	Items []Movie `json:"items"`
	Total int     `json:"total" example:"1"`
}

// Facets are the choices the filter form offers
type Facets struct {
	MPAARatings []string `json:"mpaa_ratings" example:"G,PG,R"`
	Genres      []string `json:"genres"       example:"Adventure,Horror"`
}
