package http

import "net/http"

// GetJSON mounts a GET handler with no input binding
func GetJSON(r Router, path string, h func(*http.Request) Response) {
	r.Get(path, NoBodyHandler(h))
}

// GetQuery mounts a GET handler whose query string binds into T
func GetQuery[T any](r Router, path string, h func(*http.Request, T) Response) {
	r.Get(path, QueryHandler(h))
}

// PostJSON mounts a POST handler whose JSON body binds into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) Response) {
	r.Post(path, JSONHandler(h))
}
