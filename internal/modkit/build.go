package modkit

import (
	"net/http"

	"moviesearch/internal/modkit/httpkit"
)

// Built is the resolved option set a module constructor works from
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount is the MountRoutes body every module shares: route under prefix,
// apply middleware, wrap with the subrouter hook, then register routes
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		sub = b.Subrouter(sub)
		routes(sub)
		b.Register(sub)
	})
}
