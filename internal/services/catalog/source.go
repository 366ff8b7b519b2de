// Package catalog loads the movie catalog from a JSON file or postgres at boot
package catalog

import (
	"context"

	"moviesearch/internal/core/catalog"
)

// Source kinds accepted by CATALOG_SOURCE
const (
	KindFile = "file"
	KindPG   = "pg"
)

// Source produces a catalog snapshot
type Source interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
	Kind() string
}
