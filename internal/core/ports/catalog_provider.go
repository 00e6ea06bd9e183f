package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
)

// CatalogProvider is the read-only contract for the external catalog lookup.
// The storefront queries it for listings and for the add-time snapshot of a
// product; it never subscribes to catalog changes.
type CatalogProvider interface {
	// Products returns the full product listing.
	Products(ctx context.Context) ([]catalog.Product, error)

	// ProductByID returns a single product record.
	// Returns errs.ObjectNotFoundError when the identifier is unknown.
	ProductByID(ctx context.Context, id string) (catalog.Product, error)

	// Artists returns the artist roster.
	Artists(ctx context.Context) ([]catalog.Artist, error)
}
