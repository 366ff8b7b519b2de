package middleware

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	perr "moviesearch/internal/platform/errors"
	pnet "moviesearch/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimit caps the whole router at rps requests per second with the given burst.
// rps <= 0 disables limiting.
func RateLimit(rps float64, burst int) Middleware {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = int(math.Ceil(rps))
	}
	lim := rate.NewLimiter(rate.Limit(rps), burst)
	retry := strconv.Itoa(int(math.Ceil(1 / rps)))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lim.Allow() {
				next.ServeHTTP(w, r)
				return
			}
			status, env := pnet.Error(perr.Newf(perr.ErrorCodeTooManyRequests, "rate limit exceeded"), pnet.RequestID(r.Context()))
			w.Header().Set("Retry-After", retry)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(env)
		})
	}
}
