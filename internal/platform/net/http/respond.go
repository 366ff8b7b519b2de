// Package http is the HTTP transport: router seam, server, envelopes and JSON handlers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/logger"
	pnet "moviesearch/internal/platform/net"
)

// Envelope is the response body for every endpoint
type Envelope = pnet.Wire

// ListBody is the data block of list responses
type ListBody[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("encode response")
	}
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, env := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// RespondError maps err into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Error(err, pnet.RequestID(r.Context()))
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}
	JSON(w, status, env)
}

// NotFound is a Handler that replies with a not_found envelope
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("no route for %s", r.URL.Path))
}

// MethodNotAllowed is a Handler that replies with a method_not_allowed envelope
func MethodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.Newf(perr.ErrorCodeMethodNotAllowed, "%s not allowed on %s", r.Method, r.URL.Path))
}

// Response is what return-style handlers produce
type Response struct {
	Status int
	Body   any // an error body selects the error envelope
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	_, env := pnet.OK(resp.Body, pnet.RequestID(r.Context()))
	env.StatusCode, env.Status = status, stdhttp.StatusText(status)
	JSON(w, status, env)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response whose status comes from the error code
func Error(err error) Response { return Response{Body: err} }

// List returns a 200 response with {items, total}; a nil slice is sent as []
func List[T any](items []T) Response {
	if items == nil {
		items = []T{}
	}
	return OK(ListBody[T]{Items: items, Total: len(items)})
}
