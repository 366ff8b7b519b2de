package store

import (
	"time"

	"moviesearch/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// PGFromEnv reads DBURL, MAX_CONNS, SLOW_MS and LOG_SQL under conf (usually SERVICE_PGSQL_).
// DBURL is required because callers only ask for postgres when they need it.
func PGFromEnv(conf config.Conf) PGConfig {
	return PGConfig{
		Enabled:        true,
		URL:            conf.MustString("DBURL"),
		MaxConns:       int32(conf.MayInt("MAX_CONNS", 4)),
		LogSQL:         conf.MayBool("LOG_SQL", false),
		SlowQueryMs:    conf.MayInt("SLOW_MS", 250),
		ConnectRetries: conf.MayInt("CONNECT_RETRIES", 20),
		PingTimeout:    conf.MayDuration("PING_TIMEOUT", 3*time.Second),
	}
}
