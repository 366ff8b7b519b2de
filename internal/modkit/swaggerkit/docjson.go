package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	perr "moviesearch/internal/platform/errors"
	docs "moviesearch/internal/services/api/docs"
)

// DocMutator lets modules tweak the parsed swagger doc before it is served
type DocMutator func(map[string]any)

var mutators []DocMutator

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a doc mutator; call it from module init
func Register(m DocMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON serves the generated doc lifted to OAS3 with the error envelope documented
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "doc parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(doc, "/api/v1")
		if titleSuffix != "" {
			if info, ok := doc["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + titleSuffix
				}
			}
		}
		ensureErrorSchema(doc)
		addDefaultResponse(doc, http.StatusBadRequest, perr.ErrorCodeValidation, "search must be at most 200")
		addDefaultResponse(doc, http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered")

		for _, m := range mutators {
			m(doc)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// ensureServers lifts swagger 2 and OAS 3.1 to 3.0.3, which the UI renders, and sets servers
func ensureServers(doc map[string]any, url string) {
	delete(doc, "swagger")
	if v, ok := doc["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		doc["openapi"] = "3.0.3"
	}
	delete(doc, "basePath")
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorSchema documents the error envelope unless the document already has one
func ensureErrorSchema(doc map[string]any) {
	comps := child(doc, "components")
	schemas := child(comps, "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse adds status to every operation that does not declare it
func addDefaultResponse(doc map[string]any, status int, code perr.ErrorCode, msg string) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}
	key := http.StatusText(status)
	resp := map[string]any{
		"description": key,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      key,
					"code":        int(code),
					"error":       msg,
					"request_id":  "host/abc-000001",
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			k := strconv.Itoa(status)
			if _, exists := resps[k]; !exists {
				resps[k] = resp
			}
		}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
