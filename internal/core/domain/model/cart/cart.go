package cart

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the aggregate root for a shopping session. It owns an ordered
// collection of line items backed by a single durable slot named after the
// cart's identifier.
//
// Cart invariants:
//   - No two line items share the same LineItemKey
//   - Insertion order of line items is preserved
//   - Every line item quantity is >= 1
//   - Clearing removes all items at once; the cart is never partially cleared
//
// Mutations happen in memory; the owning repository persists the whole
// collection after each operation.
type Cart struct {
	// id names the durable slot the cart is persisted under
	id kernel.UUID

	// items is the ordered line item collection
	items []*LineItem

	// guard ensures the aggregate was properly initialized
	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given slot identifier.
func NewCart(id kernel.UUID) (*Cart, error) {
	return RestoreCart(id, nil)
}

// RestoreCart reconstructs a cart from persistence with its line items in
// stored order. Every item must be a properly constructed LineItem.
func RestoreCart(id kernel.UUID, items []*LineItem) (*Cart, error) {
	c := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setID(id); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = append(c.items, items...)

	return c, nil
}

// Validate ensures the cart was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// IsEqual compares two carts by their identifiers.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's slot identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Items returns the line items in insertion order.
// The slice is a copy; the line items themselves are the aggregate's.
func (c *Cart) Items() []*LineItem {
	items := make([]*LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount returns the total number of units across all line items.
// This is the number shown on the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity()
	}
	return count
}

// AddItem adds one unit of the given key to the cart. If a line item with
// the same key already exists its quantity is incremented; otherwise a new
// line item with quantity 1 is appended, snapshotting the supplied price,
// name and image at call time.
func (c *Cart) AddItem(key kernel.LineItemKey, unitPrice kernel.Price, displayName string, imageRef string) error {
	if err := key.Validate(); err != nil {
		return err
	}

	if existing := c.find(key); existing != nil {
		existing.increment()
		return nil
	}

	item, err := NewLineItem(key, unitPrice, displayName, imageRef)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes the line item with the given key.
// Removing an absent key is a silent no-op, not an error.
func (c *Cart) RemoveItem(key kernel.LineItemKey) {
	for i, item := range c.items {
		if item.Key().IsEqual(key) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ChangeQuantity applies a signed delta to the line item with the given key.
// The resulting quantity never drops below 1: decrementing past 1 clamps
// instead of removing the item. An absent key is a silent no-op.
func (c *Cart) ChangeQuantity(key kernel.LineItemKey, delta int) {
	if item := c.find(key); item != nil {
		item.adjustQuantity(delta)
	}
}

// Total returns the sum of unit price times quantity across all line items,
// zero for an empty cart. Minor-unit arithmetic keeps the total exactly
// equal to the sum of the displayed per-line subtotals.
func (c *Cart) Total() kernel.Price {
	total := kernel.Price(0)
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clear removes every line item at once. Called after a settled checkout.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) find(key kernel.LineItemKey) *LineItem {
	for _, item := range c.items {
		if item.Key().IsEqual(key) {
			return item
		}
	}
	return nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
