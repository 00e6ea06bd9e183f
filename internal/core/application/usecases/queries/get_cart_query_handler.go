package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetCartQueryHandler builds the cart read model. It reads through the cart
// repository rather than raw SQL so that legacy payloads are migrated on the
// way in; the read model therefore always carries canonical line item keys.
type GetCartQueryHandler struct {
	cartRepository ports.CartRepository
}

// NewGetCartQueryHandler creates a handler for cart read queries.
func NewGetCartQueryHandler(cartRepository ports.CartRepository) GetCartQueryHandler {
	return GetCartQueryHandler{cartRepository: cartRepository}
}

// Handle executes the query and returns the cart read model.
// A cart that was never written comes back empty with a zero total.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	aggregate, err := h.cartRepository.Get(ctx, query.CartID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	items := make([]CartItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemResponse{
			Key:         item.Key().String(),
			ProductID:   item.Key().ProductID(),
			Variant:     item.Key().Variant(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			DisplayName: item.DisplayName(),
			ImageRef:    item.ImageRef(),
		})
	}

	return GetCartQueryResponse{
		Items: items,
		Total: aggregate.Total(),
		Count: aggregate.ItemCount(),
	}, nil
}
