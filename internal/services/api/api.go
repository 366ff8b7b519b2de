// Package api assembles the HTTP API from its modules
package api

import (
	"moviesearch/internal/modkit"
	"moviesearch/internal/modkit/httpkit"
	"moviesearch/internal/modkit/module"
	"moviesearch/internal/modkit/swaggerkit"
	phttp "moviesearch/internal/platform/net/http"
	"moviesearch/internal/platform/net/middleware"

	metamod "moviesearch/internal/services/api/meta/module"
	moviesdom "moviesearch/internal/services/api/movies/domain"
	moviesmod "moviesearch/internal/services/api/movies/module"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options are the API options
type Options struct {
	Deps           modkit.Deps
	Stack          httpkit.StackOptions
	Metrics        *prometheus.Registry // nil disables /metrics and request metrics
	EnableSwagger  bool
	DocsSuffix     string
	EnableProfiler bool
}

// Mount mounts every module under /api/v1 plus docs, profiler and metrics
func Mount(r phttp.Router, opt Options) {
	deps := opt.Deps
	if opt.Metrics != nil {
		deps.Metrics = opt.Metrics
		opt.Stack.Metrics = middleware.NewHTTPMetrics(opt.Metrics)
		r.Handle("/metrics", promhttp.HandlerFor(opt.Metrics, promhttp.HandlerOpts{}))
	}

	movies := moviesmod.New(deps)
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Facets: module.MustPortsOf[moviesdom.FacetsPort](movies),
	}))
	mods := []module.Module{movies, meta}

	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)

	swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger, TitleSuffix: opt.DocsSuffix})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
