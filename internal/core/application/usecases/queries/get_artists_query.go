package queries

import (
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/pkg/guard"
)

var ErrGetArtistsQueryIsNotConstructed = errors.New(
	"GetArtistsQuery must be created via NewGetArtistsQuery constructor",
)

// GetArtistsQuery retrieves the featured artist roster in listing order.
type GetArtistsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArtistsQuery creates a query to retrieve all featured artists.
func NewGetArtistsQuery() GetArtistsQuery {
	return GetArtistsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetArtistsQuery) Validate() error {
	return q.guard.Validate(ErrGetArtistsQueryIsNotConstructed)
}

// GetArtistsQueryResponse is the artist roster read model.
type GetArtistsQueryResponse struct {
	Artists []catalog.Artist
}
