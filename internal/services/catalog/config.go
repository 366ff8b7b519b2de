package catalog

import (
	"context"

	"moviesearch/internal/core/catalog"
	"moviesearch/internal/platform/config"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/logger"
	"moviesearch/internal/platform/store"
)

// Options select and configure the catalog source
type Options struct {
	Kind           string // file or pg
	Path           string // file only
	SkipValidation bool   // file only
	Attempts       int    // pg only
}

// FromConfig reads CATALOG_SOURCE, CATALOG_PATH, CATALOG_SKIP_SCHEMA and
// CATALOG_LOAD_ATTEMPTS; CATALOG_PATH is required when the source is file
func FromConfig(conf config.Conf) Options {
	o := Options{
		Kind:           conf.MayEnum("CATALOG_SOURCE", KindFile, KindFile, KindPG),
		SkipValidation: conf.MayBool("CATALOG_SKIP_SCHEMA", false),
		Attempts:       conf.MayInt("CATALOG_LOAD_ATTEMPTS", 5),
	}
	if o.Kind == KindFile {
		o.Path = conf.MustFile("CATALOG_PATH")
	}
	return o
}

// New returns the Source named by o; st may be nil for the file source
func New(o Options, st *store.Store) (Source, error) {
	switch o.Kind {
	case KindFile:
		return File{Path: o.Path, SkipValidation: o.SkipValidation}, nil
	case KindPG:
		if st == nil || st.PG == nil {
			return nil, perr.Unavailablef("catalog source pg needs an open postgres store")
		}
		return PG{DB: st.PG, Attempts: o.Attempts}, nil
	}
	return nil, perr.InvalidArgf("unknown catalog source %q", o.Kind)
}

// Open loads the catalog named by o. For the pg source it opens the store from
// pgConf (SERVICE_PGSQL_*) and returns it so the caller can close it and ping it
// for readiness; for the file source the store is nil.
func Open(ctx context.Context, o Options, pgConf config.Conf, app string) (*catalog.Catalog, *store.Store, error) {
	var st *store.Store
	if o.Kind == KindPG {
		var err error
		st, err = store.Open(ctx, store.Config{AppName: app, PG: store.PGFromEnv(pgConf)},
			store.WithLogger(*logger.Named("store")))
		if err != nil {
			return nil, nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "open catalog store")
		}
	}
	src, err := New(o, st)
	if err == nil {
		var c *catalog.Catalog
		if c, err = src.Load(ctx); err == nil {
			return c, st, nil
		}
	}
	if cerr := st.Close(); cerr != nil {
		logger.C(ctx).Warn().Err(cerr).Msg("close catalog store")
	}
	return nil, nil, err
}
