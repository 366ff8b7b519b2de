// Package middleware provides thin adapters over chi middleware without leaking chi types
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-ID and stores it on context
func RequestID() Middleware { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips/deflates responses at level (flate.DefaultCompression, flate.BestSpeed, ...)
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level, "application/json")
	return c.Handler
}

// StripSlashes strips a trailing slash so /movies and /movies/ resolve alike
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat replies 200 to GET path ahead of routing, for load balancer checks
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows the read-only verbs the API serves
func CORS(o CORSOptions) Middleware {
	origins := o.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Catalog-Snapshot"},
		MaxAge:         o.MaxAge,
	})
}

// Defaults is the stack every API router starts with
func Defaults(timeout time.Duration) []Middleware {
	return []Middleware{
		RealIP(),
		RequestID(),
		RecoverJSON,
		Timeout(timeout),
		Compress(flate.DefaultCompression),
	}
}
