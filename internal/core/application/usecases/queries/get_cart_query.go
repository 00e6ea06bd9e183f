// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the storefront pages.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the current state of a cart slot: its line items
// in insertion order, the badge count and the running total.
//
// Example:
//
//	query, err := NewGetCartQuery(cartID)
//	if err != nil {
//	    return fmt.Errorf("invalid cart request: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load cart: %w", err)
//	}
//	fmt.Printf("%d items, total %d\n", response.Count, response.Total)
type GetCartQuery struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the cart stored under the given slot
// identifier. An unknown identifier yields an empty cart, not an error.
func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCartID(cartID); err != nil {
		return GetCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartID returns the slot identifier of the cart to read.
func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

func (q *GetCartQuery) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	q.cartID = cartID
	return nil
}

// GetCartQueryResponse is the cart read model. Items appear in insertion
// order; Total and the per-item subtotals are minor-unit amounts.
type GetCartQueryResponse struct {
	Items []CartItemResponse
	Total kernel.Price
	Count int
}

// CartItemResponse is one line item in the cart read model. Key is the
// wire form of the line item identity; UnitPrice and Subtotal are minor-unit
// amounts.
type CartItemResponse struct {
	Key         string
	ProductID   string
	Variant     string
	Quantity    int
	UnitPrice   kernel.Price
	Subtotal    kernel.Price
	DisplayName string
	ImageRef    string
}
