// Package logger wraps zerolog with process defaults and request-scoped children
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"moviesearch/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // console|json
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw config view (config itself logs, so it can't be used here)
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(env.Get("LEVEL", "debug")),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "moviesearch"),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

// Logger is the project-wide logging type
type Logger = zerolog.Logger

var (
	once  sync.Once
	root  atomic.Pointer[zerolog.Logger]
	ready atomic.Bool
)

// Get returns the root logger, initialising it from env on first use
func Get() *Logger {
	if !ready.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger. Only the first call has any effect.
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stdout
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		b := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			b = b.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			b = b.Str("service", opt.Service)
		}
		if opt.Component != "" {
			b = b.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			b = b.Str(k, v)
		}

		log := b.Logger()
		if opt.WithCaller {
			log = log.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}

		root.Store(&log)
		ready.Store(true)
	})
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.DebugLevel
	}
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyRoute     = ctxKey{"route"}
)

// WithRequest stores the request id and route pattern for C to pick up
func WithRequest(ctx context.Context, reqID, route string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, keyRoute, route)
	}
	return ctx
}

// C returns a child of the root logger carrying request_id and route from ctx
func C(ctx context.Context) *Logger {
	b := Get().With()
	if s, ok := ctx.Value(keyRequestID).(string); ok && s != "" {
		b = b.Str("request_id", s)
	}
	if s, ok := ctx.Value(keyRoute).(string); ok && s != "" {
		b = b.Str("route", s)
	}
	l := b.Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
