package catalog

import (
	"encoding/json"
	"io"

	"moviesearch/internal/core/movie"
	perr "moviesearch/internal/platform/errors"
)

// record mirrors the conventional movies.json shape; JSON null means unknown
type record struct {
	Title                *string  `json:"Title"`
	MPAARating           *string  `json:"MPAA Rating"`
	MajorGenre           *string  `json:"Major Genre"`
	IMDBRating           *float64 `json:"IMDB Rating"`
	RottenTomatoesRating *float64 `json:"Rotten Tomatoes Rating"`
}

// DecodeJSON reads a JSON array of movie records
// unknown keys are ignored since source dumps carry many more columns
func DecodeJSON(r io.Reader) ([]movie.Movie, error) {
	var recs []record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode movie catalog")
	}
	out := make([]movie.Movie, 0, len(recs))
	for _, rec := range recs {
		out = append(out, movie.Movie{
			Title:                rec.Title,
			MPAARating:           rec.MPAARating,
			MajorGenre:           rec.MajorGenre,
			IMDBRating:           rec.IMDBRating,
			RottenTomatoesRating: rec.RottenTomatoesRating,
		})
	}
	return out, nil
}

// ReadJSON decodes r and builds a Catalog
func ReadJSON(r io.Reader, opts ...Option) (*Catalog, error) {
	ms, err := DecodeJSON(r)
	if err != nil {
		return nil, err
	}
	return New(ms, opts...), nil
}
