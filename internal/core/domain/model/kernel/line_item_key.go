package kernel

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// KeySeparator joins the product identifier and the variant in the wire and
// persistence representation of a LineItemKey. Inside the domain the key is
// opaque; the separator only appears at the boundary.
const KeySeparator = "|"

// ErrLineItemKeyIsNotConstructed is returned when attempting to use an
// improperly initialized LineItemKey. Keys must be created via NewLineItemKey
// or LineItemKeyFromString.
var ErrLineItemKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"LineItemKey must be created via NewLineItemKey or LineItemKeyFromString constructors")

// LineItemKey is the composite identity of a cart line item. Two entries with
// the same (productID, variant) pair are the same line item and merge their
// quantities instead of duplicating.
//
// LineItemKey is an immutable value object. The variant may be empty for
// records migrated from the legacy schema; the product identifier is always
// required.
//
// Example:
//
//	key, err := kernel.NewLineItemKey("lip-01", "Red")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(key.String()) // Output: lip-01|Red
type LineItemKey struct { //nolint:recvcheck //using for validation
	productID string
	variant   string
	guard     guard.ConstructorGuard
}

// NewLineItemKey creates a LineItemKey from a product identifier and a
// variant. The product identifier must not be empty; the variant may be
// empty (legacy records carry no variant).
func NewLineItemKey(productID string, variant string) (LineItemKey, error) {
	key := LineItemKey{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(key.setProductID(productID), key.setVariant(variant)); err != nil {
		return LineItemKey{}, err
	}

	return key, nil
}

// LineItemKeyFromString parses the wire representation of a key,
// "productID|variant". Only the first separator splits; the variant may
// itself be empty. Used when reconstructing keys from persistence or from
// HTTP route parameters.
func LineItemKeyFromString(s string) (LineItemKey, error) {
	productID, variant, _ := strings.Cut(s, KeySeparator)
	return NewLineItemKey(productID, variant)
}

// Validate checks that the key was created through a constructor.
func (k LineItemKey) Validate() error {
	return k.guard.Validate(ErrLineItemKeyIsNotConstructed)
}

// IsEqual compares two keys by their (productID, variant) pair.
func (k LineItemKey) IsEqual(other LineItemKey) bool {
	return k.productID == other.productID && k.variant == other.variant
}

// ProductID returns the product identifier part of the key.
func (k LineItemKey) ProductID() string {
	return k.productID
}

// Variant returns the variant part of the key. Empty for legacy records.
func (k LineItemKey) Variant() string {
	return k.variant
}

// String returns the wire representation, "productID|variant".
func (k LineItemKey) String() string {
	return k.productID + KeySeparator + k.variant
}

func (k *LineItemKey) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	k.productID = productID
	return nil
}

func (k *LineItemKey) setVariant(variant string) error {
	k.variant = variant
	return nil
}
