package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")

	// ErrCartIsEmpty indicates a checkout was attempted on a cart with no
	// line items. No settlement exchange is made in that case.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// CheckoutCommand represents a request to settle a cart and issue an order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(cartID, "Guest")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, gateway, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order placed: %s", result.OrderID)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cartID       kernel.UUID
	customerName string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out a cart for the named
// customer. Both the cart identifier and the customer name are required.
func NewCheckoutCommand(cartID kernel.UUID, customerName string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCustomerName(customerName),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CartID returns the identifier of the cart to settle.
func (c CheckoutCommand) CartID() kernel.UUID {
	return c.cartID
}

// CustomerName returns the minimal customer descriptor for the settlement.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

func (c *CheckoutCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *CheckoutCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}
