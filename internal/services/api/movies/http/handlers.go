// Package http provides http transport for movie search
package http

import (
	stdhttp "net/http"

	"moviesearch/internal/modkit/httpkit"
	"moviesearch/internal/services/api/movies/domain"
	svc "moviesearch/internal/services/api/movies/service"
)

// SnapshotHeader names the catalog snapshot a result was computed from
const SnapshotHeader = "X-Catalog-Snapshot"

// Register mounts movies endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/", h.list)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.Get(r, "/facets", h.facets)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /movies Movies moviesList
// @Summary List movies, filtered by any query parameters given
// @Tags Movies
// @Produce json
// @Param search query string false "Title substring, case-insensitive"
// @Param mpaa query []string false "MPAA ratings, repeated or comma separated" collectionFormat(csv)
// @Param genre query []string false "Major genres, repeated or comma separated" collectionFormat(csv)
// @Param imdb_min query number false "Lowest IMDB rating, inclusive"
// @Param imdb_max query number false "Highest IMDB rating, inclusive"
// @Param rotten_min query number false "Lowest Rotten Tomatoes rating, inclusive"
// @Param rotten_max query number false "Highest Rotten Tomatoes rating, inclusive"
// @Success 200 {object} domain.MovieList "ok"
// @Router /movies [get]
func (h *handlers) list(r *stdhttp.Request, in domain.SearchInput) httpkit.Response {
	return h.run(r, in)
}

// swagger:route POST /movies/search Movies moviesSearch
// @Summary Search movies with a JSON filter form
// @Tags Movies
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Criteria"
// @Success 200 {object} domain.MovieList "ok"
// @Router /movies/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) httpkit.Response {
	return h.run(r, in)
}

// swagger:route GET /movies/facets Movies moviesFacets
// @Summary Distinct MPAA ratings and genres for the filter form
// @Tags Movies
// @Produce json
// @Success 200 {object} domain.Facets "ok"
// @Router /movies/facets [get]
func (h *handlers) facets(r *stdhttp.Request) httpkit.Response {
	return httpkit.Result(h.svc.Facets(r.Context()))
}

func (h *handlers) run(r *stdhttp.Request, in domain.SearchInput) httpkit.Response {
	res, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return httpkit.Error(err)
	}
	resp := httpkit.List(res.Movies)
	resp.Header = stdhttp.Header{SnapshotHeader: []string{res.Snapshot}}
	return resp
}
