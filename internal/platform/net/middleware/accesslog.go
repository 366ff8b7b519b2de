package middleware

import (
	"net/http"
	"time"

	"moviesearch/internal/platform/logger"
	pnet "moviesearch/internal/platform/net"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests taking >= Slow at warn level; 0 disables
	Slow time.Duration
}

// AccessLog annotates the request context for logger.C and logs one line per request.
// Mount after RequestID.
func AccessLog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), "")
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			elapsed := time.Since(start)
			route := ""
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			log := logger.C(logger.WithRequest(ctx, "", route))
			evt := log.Info()
			switch {
			case ww.Status() >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			}
			evt.Int("status", status(ww)).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}

// status treats "nothing written" as the implicit 200 net/http sends
func status(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
