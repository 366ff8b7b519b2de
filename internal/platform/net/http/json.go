package http

import (
	"net/http"

	"moviesearch/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a JSON body into T before calling fn
func JSONHandler[T any](fn func(*http.Request, T) Response) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return fn(r, in)
	})
}

// QueryHandler decodes and validates the URL query into T before calling fn
func QueryHandler[T any](fn func(*http.Request, T) Response) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return Error(err)
		}
		return fn(r, in)
	})
}

// NoBodyHandler calls fn without reading request input
func NoBodyHandler(fn func(*http.Request) Response) Handler {
	return Handle(fn)
}
