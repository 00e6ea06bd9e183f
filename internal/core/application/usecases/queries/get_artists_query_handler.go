package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetArtistsQueryHandler serves artist roster reads through the
// catalog provider port.
type GetArtistsQueryHandler struct {
	catalog ports.CatalogProvider
}

// NewGetArtistsQueryHandler creates a handler for artist roster queries.
func NewGetArtistsQueryHandler(catalog ports.CatalogProvider) GetArtistsQueryHandler {
	return GetArtistsQueryHandler{catalog: catalog}
}

// Handle executes the query and returns all featured artists.
func (h GetArtistsQueryHandler) Handle(
	ctx context.Context,
	query GetArtistsQuery,
) (GetArtistsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetArtistsQueryResponse{}, err
	}

	artists, err := h.catalog.Artists(ctx)
	if err != nil {
		return GetArtistsQueryResponse{}, err
	}

	return GetArtistsQueryResponse{Artists: artists}, nil
}
