// @title         Movie Search API
// @version       0.1.0
// @description   Read only search over the movie catalog
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"moviesearch/internal/core/movie"
	"moviesearch/internal/modkit"
	"moviesearch/internal/modkit/httpkit"
	"moviesearch/internal/platform/config"
	"moviesearch/internal/platform/logger"
	phttp "moviesearch/internal/platform/net/http"
	"moviesearch/internal/services/api"
	catalogsvc "moviesearch/internal/services/catalog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/text/language"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Init(logger.FromEnv())
	l := logger.Named("api")

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// catalog first: the API does not start without one
	cat, st, err := catalogsvc.Open(ctx, catalogsvc.FromConfig(apiCfg), pgCfg, "moviesearch-api")
	if err != nil {
		l.Panic().Err(err).Msg("catalog load failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Deps: modkit.Deps{
			Log:     *l,
			Cfg:     apiCfg,
			Catalog: cat,
			Engine:  movie.NewEngine(apiCfg.MayLocale("LOCALE", language.English)),
			Store:   st,
		},
		Stack: httpkit.StackOptions{
			Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
			SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 0),
			Origins:     apiCfg.MayCSV("CORS_ORIGINS", nil),
			RPS:         float64(apiCfg.MayInt("RATE_LIMIT_RPS", 0)),
			Burst:       apiCfg.MayInt("RATE_LIMIT_BURST", 0),
		},
		Metrics:        reg,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		DocsSuffix:     apiCfg.MayString("DOCS_TITLE_SUFFIX", ""),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	l.Info().
		Str("addr", srv.Addr()).
		Int("movies", cat.Len()).
		Str("source", cat.Source()).
		Msg("moviesearch api listening")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
