package queries

import (
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the full product catalog in listing order.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve all products.
// This is a parameterless query that fetches the complete catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is the catalog read model.
type GetProductsQueryResponse struct {
	Products []catalog.Product
}
