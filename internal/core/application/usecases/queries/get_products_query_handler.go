package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetProductsQueryHandler serves catalog listing reads through the
// catalog provider port.
type GetProductsQueryHandler struct {
	catalog ports.CatalogProvider
}

// NewGetProductsQueryHandler creates a handler for catalog listing queries.
func NewGetProductsQueryHandler(catalog ports.CatalogProvider) GetProductsQueryHandler {
	return GetProductsQueryHandler{catalog: catalog}
}

// Handle executes the query and returns all products in listing order.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	products, err := h.catalog.Products(ctx)
	if err != nil {
		return GetProductsQueryResponse{}, err
	}

	return GetProductsQueryResponse{Products: products}, nil
}
