// Package module defines the contract modkit modules satisfy and the port registry
package module

import (
	phttp "moviesearch/internal/platform/net/http"
)

// Module is the subset of modkit.Module the registry needs.
// It lives here so a module's ports package can import it without a cycle.
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
