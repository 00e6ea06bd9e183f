package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrChangeQuantityCommandIsNotConstructed = errors.New(
		"ChangeQuantityCommand must be created via NewChangeQuantityCommand constructor",
	)
	ErrDeltaIsRequired = errors.New("delta must not be zero")
)

// ChangeQuantityCommand represents a request to adjust the quantity of a
// line item by a signed delta. The cart clamps the result at 1; dropping an
// item entirely requires an explicit RemoveItemCommand.
type ChangeQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	key    kernel.LineItemKey
	delta  int

	guard guard.ConstructorGuard
}

// NewChangeQuantityCommand creates a command to adjust a line item quantity.
// The delta must be non-zero; a zero delta would be a pointless write.
func NewChangeQuantityCommand(cartID kernel.UUID, key kernel.LineItemKey, delta int) (ChangeQuantityCommand, error) {
	cmd := ChangeQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setKey(key),
		cmd.setDelta(delta),
	); err != nil {
		return ChangeQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeQuantityCommandIsNotConstructed)
}

// CartID returns the identifier of the cart to mutate.
func (c ChangeQuantityCommand) CartID() kernel.UUID {
	return c.cartID
}

// Key returns the identity of the line item to adjust.
func (c ChangeQuantityCommand) Key() kernel.LineItemKey {
	return c.key
}

// Delta returns the signed quantity adjustment.
func (c ChangeQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeQuantityCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *ChangeQuantityCommand) setKey(key kernel.LineItemKey) error {
	if err := key.Validate(); err != nil {
		return err
	}

	c.key = key
	return nil
}

func (c *ChangeQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsRequired
	}

	c.delta = delta
	return nil
}
