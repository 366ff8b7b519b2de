// Package module wires meta endpoints into the API
package module

import (
	"context"
	"net/http"
	"time"

	modkit "moviesearch/internal/modkit"
	"moviesearch/internal/modkit/httpkit"
	"moviesearch/internal/platform/store"
	str "moviesearch/internal/platform/strings"
	metahttp "moviesearch/internal/services/api/meta/http"
	moviesdom "moviesearch/internal/services/api/movies/domain"
)

// ServiceName is reported by health and version
const ServiceName = "moviesearch-api"

// Ports are what meta imports from other modules
type Ports struct {
	Facets moviesdom.FacetsPort
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New constructs a meta module; pass modkit.WithPorts(Ports{...}) to report facet counts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   time.Now(),
		Catalog:     deps.Catalog,
	}
	if deps.Engine != nil {
		d.Locale = deps.Engine.Locale().String()
	}
	if p, ok := b.Ports.(Ports); ok {
		d.Facets = p.Facets
	}
	if deps.Store != nil && deps.Store.PG != nil {
		d.PG = pinger{deps.Store}
	}
	return &Module{built: b, deps: d}
}

// pinger checks every backend the store opened
type pinger struct{ st *store.Store }

func (p pinger) Ping(ctx context.Context) error { return p.st.Guard(ctx) }

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Prefix = m.Prefix()
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
