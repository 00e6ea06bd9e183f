package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to delete a line item from a cart.
// Removing a key that is not present is a silent no-op, not an error.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	key    kernel.LineItemKey

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove the line item with the
// given key from a cart. Both identifiers must be properly constructed.
func NewRemoveItemCommand(cartID kernel.UUID, key kernel.LineItemKey) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setKey(key),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// CartID returns the identifier of the cart to mutate.
func (c RemoveItemCommand) CartID() kernel.UUID {
	return c.cartID
}

// Key returns the identity of the line item to remove.
func (c RemoveItemCommand) Key() kernel.LineItemKey {
	return c.key
}

func (c *RemoveItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *RemoveItemCommand) setKey(key kernel.LineItemKey) error {
	if err := key.Validate(); err != nil {
		return err
	}

	c.key = key
	return nil
}
