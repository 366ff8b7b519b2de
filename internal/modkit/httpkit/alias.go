// Package httpkit re-exports the platform http helpers modules need
// so module code does not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "moviesearch/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// ListBody is the {items, total} data block of list responses
type ListBody[T any] = phttp.ListBody[T]

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// List returns a 200 response with items and their count
func List[T any](items []T) Response { return phttp.List(items) }

// Result turns a (value, error) pair into a Response
func Result(v any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.OK(v)
}

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
