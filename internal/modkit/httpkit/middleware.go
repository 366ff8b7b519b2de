package httpkit

import (
	"net/http"
	"time"

	"moviesearch/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration // default 30s
	SlowRequest time.Duration // access log warn threshold, default 1s
	Origins     []string      // CORS origins, default *
	RPS         float64       // per client rate, 0 disables
	Burst       int
	Metrics     *middleware.HTTPMetrics // nil disables
}

// CommonStack returns the baseline middleware for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = time.Second
	}
	mw := middleware.Defaults(o.Timeout)
	mw = append(mw,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins, MaxAge: 300}),
		middleware.StripSlashes(),
	)
	if o.Metrics != nil {
		mw = append(mw, o.Metrics.Handler)
	}
	if o.RPS > 0 {
		mw = append(mw, middleware.RateLimit(o.RPS, o.Burst))
	}
	return mw
}
