package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("productID is required")
)

// AddItemCommand represents a request to add one unit of a product to a cart.
// The variant is optional; when empty the handler resolves it from the
// catalog entry (first listed variant, else the standard sentinel).
//
// Example:
//
//	cmd, err := NewAddItemCommand(cartID, "lip-01", "Red")
//	if err != nil {
//	    return fmt.Errorf("invalid add request: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory, catalogProvider)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
//	// nil error is the completion signal: the presentation layer can now
//	// re-read the cart and reveal the cart view.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	productID string
	variant   string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a product to a cart.
// Validates that the cart identifier is valid and the product identifier is
// not empty. The variant may be empty to request the catalog default.
func NewAddItemCommand(cartID kernel.UUID, productID string, variant string) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setProductID(productID),
	); err != nil {
		return AddItemCommand{}, err
	}

	cmd.variant = variant
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// CartID returns the identifier of the cart to mutate.
func (c AddItemCommand) CartID() kernel.UUID {
	return c.cartID
}

// ProductID returns the catalog identifier of the product to add.
func (c AddItemCommand) ProductID() string {
	return c.productID
}

// Variant returns the explicitly requested variant, empty for the default.
func (c AddItemCommand) Variant() string {
	return c.variant
}

func (c *AddItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *AddItemCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
