package catalog

import (
	"strings"

	perr "moviesearch/internal/platform/errors"

	"github.com/xeipuuv/gojsonschema"
)

// movieSchema describes a catalog file: an array of records whose five known
// columns are either null or the right type; other columns are allowed
const movieSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "Title":                  {"type": ["string", "null"]},
      "MPAA Rating":            {"type": ["string", "null"]},
      "Major Genre":            {"type": ["string", "null"]},
      "IMDB Rating":            {"type": ["number", "null"]},
      "Rotten Tomatoes Rating": {"type": ["number", "null"]}
    }
  }
}`

// maxSchemaErrors caps how many violations end up in the error message
const maxSchemaErrors = 5

var compiledSchema = gojsonschema.NewStringLoader(movieSchema)

// validateDocument checks raw against the catalog schema
func validateDocument(raw []byte) error {
	schema, err := gojsonschema.NewSchema(compiledSchema)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "compile catalog schema")
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "decode movie catalog")
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for i, desc := range res.Errors() {
		if i == maxSchemaErrors {
			msgs = append(msgs, "...")
			break
		}
		msgs = append(msgs, desc.String())
	}
	return perr.Newf(perr.ErrorCodeInvalidArgument, "catalog does not match schema: %s", strings.Join(msgs, "; "))
}
