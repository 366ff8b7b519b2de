package module

import "moviesearch/internal/services/api/movies/domain"

// Ports is what the movies module exports to other modules
type Ports struct {
	Facets domain.FacetsPort
	Search domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
