package modkit

import (
	"moviesearch/internal/core/catalog"
	"moviesearch/internal/core/movie"
	"moviesearch/internal/platform/config"
	"moviesearch/internal/platform/logger"
	"moviesearch/internal/platform/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds the process-wide dependencies handed to every module.
// Catalog and Engine are set once at boot and only read afterwards.
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Catalog *catalog.Catalog
	Engine  *movie.Engine
	Store   *store.Store          // nil unless the catalog came from postgres
	Metrics prometheus.Registerer // nil disables module metrics
}

// Ready reports whether the catalog has been loaded
func (d Deps) Ready() bool { return d.Catalog != nil && d.Engine != nil }
