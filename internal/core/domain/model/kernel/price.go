package kernel

import (
	"fmt"
	"math"

	"storefront/internal/pkg/errs"
)

// Price represents a monetary amount in integer minor units (centavos).
// Keeping cart arithmetic in integers guarantees that a cart total is exactly
// the sum of its per-line subtotals, with no floating-point drift.
type Price int64

// NewPriceFromFloat converts a major-unit amount (as found in the catalog
// data files) to a Price, rounding to the nearest minor unit.
// Negative amounts are rejected.
func NewPriceFromFloat(amount float64) (Price, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not a non-negative amount", amount))
	}
	return Price(math.Round(amount * 100)), nil
}

// Multiply returns the price scaled by a quantity.
func (p Price) Multiply(quantity int) Price {
	return p * Price(quantity)
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return p + other
}

// Float64 returns the amount in major units for presentation and wire use.
func (p Price) Float64() float64 {
	return float64(p) / 100
}
