package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

// LineItem is a single entry of a shopping cart. It is identified within the
// cart by its LineItemKey and carries an add-time snapshot of the catalog
// entry it was created from.
//
// LineItem invariants:
//   - The key must be a valid LineItemKey
//   - Quantity is always >= 1
//   - Unit price, display name and image reference are copied at add time
//     and never refreshed from the catalog
type LineItem struct {
	// key is the composite (product, variant) identity within the cart
	key kernel.LineItemKey

	// quantity is the number of units, always >= 1
	quantity int

	// unitPrice is the add-time price snapshot in minor units
	unitPrice kernel.Price

	// displayName is the add-time product name snapshot
	displayName string

	// imageRef is the add-time product image reference snapshot
	imageRef string

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for a freshly added product with quantity 1.
// The price, name and image are the caller's snapshot of the catalog entry.
func NewLineItem(key kernel.LineItemKey, unitPrice kernel.Price, displayName string, imageRef string) (*LineItem, error) {
	return RestoreLineItem(key, 1, unitPrice, displayName, imageRef)
}

// RestoreLineItem reconstructs a line item from persistence with an explicit
// quantity. Used by the repository when loading a cart slot.
func RestoreLineItem(
	key kernel.LineItemKey,
	quantity int,
	unitPrice kernel.Price,
	displayName string,
	imageRef string,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setKey(key),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	item.displayName = displayName
	item.imageRef = imageRef
	return item, nil
}

// Validate ensures the line item was properly constructed.
func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Key returns the composite identity of the line item.
func (i *LineItem) Key() kernel.LineItemKey {
	return i.key
}

// ProductID returns the product identifier part of the key.
func (i *LineItem) ProductID() string {
	return i.key.ProductID()
}

// Variant returns the variant part of the key.
// Empty for records migrated from the legacy schema.
func (i *LineItem) Variant() string {
	return i.key.Variant()
}

// Quantity returns the number of units, always >= 1.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the add-time price snapshot.
func (i *LineItem) UnitPrice() kernel.Price {
	return i.unitPrice
}

// DisplayName returns the add-time product name snapshot.
func (i *LineItem) DisplayName() string {
	return i.displayName
}

// ImageRef returns the add-time product image reference snapshot.
func (i *LineItem) ImageRef() string {
	return i.imageRef
}

// Subtotal returns unit price times quantity.
func (i *LineItem) Subtotal() kernel.Price {
	return i.unitPrice.Multiply(i.quantity)
}

// increment raises the quantity by one when the same key is added again.
func (i *LineItem) increment() {
	i.quantity++
}

// adjustQuantity applies a signed delta, clamping the result at 1.
// Dropping a line item entirely is an explicit removal, never a decrement.
func (i *LineItem) adjustQuantity(delta int) {
	i.quantity += delta
	if i.quantity < 1 {
		i.quantity = 1
	}
}

func (i *LineItem) setKey(key kernel.LineItemKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	i.key = key
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
