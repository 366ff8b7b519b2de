// Package version reports the build stamped into the binary
package version

import "runtime"

// BuildInfo describes the running build
type BuildInfo struct {
	Service   string `json:"service"    example:"moviesearch-api"`
	Version   string `json:"version"    example:"v0.1.0"`
	Commit    string `json:"commit"     example:"abcd123"`
	Date      string `json:"date"       example:"2026-10-01"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// set with -ldflags "-X moviesearch/internal/core/version.version=v0.1.0 -X ...commit=abcd -X ...date=2026-10-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}
