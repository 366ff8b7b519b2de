package catalog

import (
	"bytes"
	"context"
	"os"

	"moviesearch/internal/core/catalog"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/logger"
)

// File loads a JSON catalog from disk
type File struct {
	Path           string
	SkipValidation bool
}

// Kind implements Source
func (f File) Kind() string { return KindFile }

// Load reads, validates and decodes the file
func (f File) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read catalog %s", f.Path)
	}
	if !f.SkipValidation {
		if err := validateDocument(raw); err != nil {
			return nil, perr.WithOp(err, "catalog.File.Load")
		}
	}
	c, err := catalog.ReadJSON(bytes.NewReader(raw), catalog.WithSource(KindFile+":"+f.Path))
	if err != nil {
		return nil, err
	}
	logger.C(ctx).Info().
		Str("path", f.Path).
		Int("movies", c.Len()).
		Str("snapshot", c.ID().String()).
		Msg("catalog loaded")
	return c, nil
}
