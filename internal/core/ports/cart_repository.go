package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each cart is stored in a single durable slot named by the cart identifier;
// the slot holds the serialized line item collection and is overwritten
// wholesale on every mutation.
type CartRepository interface {
	// Get loads the cart stored under the given identifier, applying
	// legacy-record migration to the stored payload. A missing slot or an
	// unparseable payload yields a fresh empty cart, never an error the
	// caller must handle.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// Save serializes the cart's full line item collection and overwrites
	// its slot. Called after every mutating operation before control
	// returns to the caller.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// RemoveStale deletes every slot that has not been written since the
	// given instant. Returns the number of removed slots.
	RemoveStale(ctx context.Context, before time.Time) (int64, error)
}
