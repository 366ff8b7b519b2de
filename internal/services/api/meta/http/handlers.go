// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"moviesearch/internal/core/catalog"
	"moviesearch/internal/core/version"
	"moviesearch/internal/modkit/httpkit"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/store"
	moviesdom "moviesearch/internal/services/api/movies/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Catalog     *catalog.Catalog
	Facets      moviesdom.FacetsPort // nil reports zero facet counts
	Locale      string
	PG          store.Pinger // nil when the catalog is not from postgres
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/catalog", h.catalog)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"moviesearch-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"catalog"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

// CatalogResponse describes the loaded catalog snapshot
type CatalogResponse struct {
	Snapshot    string `json:"snapshot"     example:"1f0c9a1e-4a7e-4d43-9f1c-6a1d1c3c2b10"`
	Source      string `json:"source"       example:"file:/data/movies.json"`
	Movies      int    `json:"movies"       example:"3201"`
	MPAARatings int    `json:"mpaa_ratings" example:"7"`
	Genres      int    `json:"genres"       example:"12"`
	Locale      string `json:"locale"       example:"en"`
	LoadedAt    string `json:"loaded_at"    example:"2026-10-19T13:00:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) httpkit.Response {
	return httpkit.OK(HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	})
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe: catalog loaded and, when used, postgres reachable
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "not ready"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) httpkit.Response {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	cat := ReadyCheck{Name: "catalog", Status: "ok"}
	if h.deps.Catalog == nil {
		cat = ReadyCheck{Name: "catalog", Status: "fail", Error: "catalog not loaded"}
	}
	pg := ReadyCheck{Name: "pg", Status: "skipped"}
	if h.deps.PG != nil {
		pg.Status = "ok"
		if err := h.deps.PG.Ping(ctx); err != nil {
			pg.Status, pg.Error = "fail", err.Error()
		}
	}

	resp := ReadyResponse{Status: "ok", Checks: []ReadyCheck{cat, pg}, Now: time.Now().UTC().Format(time.RFC3339)}
	status := http.StatusOK
	if cat.Status == "fail" || pg.Status == "fail" {
		resp.Status, status = "fail", http.StatusServiceUnavailable
	}
	return httpkit.Response{Status: status, Body: resp}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) httpkit.Response {
	return httpkit.OK(version.Info(h.deps.ServiceName))
}

// swagger:route GET /meta/catalog Meta metaCatalog
// @Summary Loaded catalog snapshot
// @Tags Meta
// @Produce json
// @Success 200 {object} CatalogResponse "ok"
// @Router /meta/catalog [get]
func (h *handlers) catalog(r *http.Request) httpkit.Response {
	c := h.deps.Catalog
	if c == nil {
		return httpkit.Error(perr.Unavailablef("catalog not loaded"))
	}
	out := CatalogResponse{
		Snapshot: c.ID().String(),
		Source:   c.Source(),
		Movies:   c.Len(),
		Locale:   h.deps.Locale,
		LoadedAt: c.LoadedAt().Format(time.RFC3339),
	}
	if h.deps.Facets != nil {
		f, err := h.deps.Facets.Facets(r.Context())
		if err != nil {
			return httpkit.Error(err)
		}
		out.MPAARatings, out.Genres = len(f.MPAARatings), len(f.Genres)
	}
	return httpkit.OK(out)
}
