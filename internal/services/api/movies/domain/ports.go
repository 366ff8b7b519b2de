package domain

import "context"

// ServicePort is the movies service contract
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (Result, error)
	Facets(ctx context.Context) (Facets, error)
}

// FacetsPort is exported to other modules that describe the catalog
type FacetsPort interface {
	Facets(ctx context.Context) (Facets, error)
}

// Result is a search outcome tagged with the catalog snapshot it came from
type Result struct {
	Movies   []Movie
	Snapshot string
}
