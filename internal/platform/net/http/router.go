package http

import "net/http"

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against. The API is read-only,
// so only the verbs it serves are exposed.
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Head(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// NotFound and MethodNotAllowed replace the default plain-text replies
	NotFound(h Handler)
	MethodNotAllowed(h Handler)

	Mux() http.Handler
}
