// Package module wires movie search into the API using modkit
package module

import (
	"net/http"

	modkit "moviesearch/internal/modkit"
	"moviesearch/internal/modkit/httpkit"
	str "moviesearch/internal/platform/strings"
	movieshttp "moviesearch/internal/services/api/movies/http"
	moviessvc "moviesearch/internal/services/api/movies/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   moviessvc.Service
	ports Ports
}

// New constructs the movies module; deps must carry a loaded catalog and engine
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if !deps.Ready() {
		panic("movies module requires a loaded catalog")
	}
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("movies"),
		modkit.WithPrefix("/movies"),
	}, opts...)...)

	svc := moviessvc.New(deps.Catalog, deps.Engine, deps.Metrics)
	return &Module{
		built: b,
		svc:   svc,
		ports: Ports{Facets: svc, Search: svc},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Prefix = m.Prefix()
	m.built.Mount(r, func(rr httpkit.Router) { movieshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
