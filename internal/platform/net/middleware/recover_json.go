package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/logger"
	pnet "moviesearch/internal/platform/net"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack with the request id.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, env := pnet.Error(perr.PanicErrf("internal error"), reqID)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(env)
		}()
		next.ServeHTTP(w, r)
	})
}
