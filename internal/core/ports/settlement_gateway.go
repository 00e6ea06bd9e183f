package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
)

var (
	// ErrSettlementRejected indicates the settlement endpoint explicitly
	// declined the checkout. The cart is left untouched for a manual retry.
	ErrSettlementRejected = errors.New("settlement rejected")

	// ErrSettlementUnavailable indicates the settlement endpoint could not
	// be reached or its response could not be parsed. Observably identical
	// to a rejection for the caller, but logged as a transport fault.
	ErrSettlementUnavailable = errors.New("settlement endpoint unavailable")
)

// Customer is the minimal customer descriptor sent with a checkout.
type Customer struct {
	Name string
}

// SettlementGateway is the outbound contract for the settlement endpoint.
// Settle submits the full line item collection and returns the issued order
// identifier, or one of the sentinel errors above. There is no retry logic;
// a failed attempt is terminal and re-invocation is the caller's choice.
type SettlementGateway interface {
	Settle(ctx context.Context, items []*cart.LineItem, customer Customer) (string, error)
}
