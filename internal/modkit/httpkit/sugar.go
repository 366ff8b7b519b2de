package httpkit

import (
	"net/http"

	phttp "moviesearch/internal/platform/net/http"
)

// Get mounts a GET handler that reads no input
func Get(r Router, path string, h func(*http.Request) Response) {
	phttp.GetJSON(r, path, h)
}

// GetQuery mounts a GET handler with query string binding into T
func GetQuery[T any](r Router, path string, h func(*http.Request, T) Response) {
	phttp.GetQuery(r, path, h)
}

// PostJSON mounts a POST handler with JSON body binding into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) Response) {
	phttp.PostJSON(r, path, h)
}
