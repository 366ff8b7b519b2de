package pg

import (
	"context"
	"strings"

	"moviesearch/internal/platform/logger"
	pnet "moviesearch/internal/platform/net"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives every statement the store adapter runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements with a component=pg child of root. It forces debug level
// so enabling LOG_SQL is enough to see queries regardless of LOG_LEVEL.
func Tracer(root logger.Logger) QueryTracer {
	return &zlTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	evt := z.log.Info()
	switch {
	case ev.Err != nil:
		evt = z.log.Error()
	case ev.Slow:
		evt = z.log.Warn()
	}
	if id := pnet.RequestID(ctx); id != "" {
		evt = evt.Str("request_id", id)
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// compact collapses runs of whitespace to one space and trims the ends
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
