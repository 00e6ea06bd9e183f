package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/ports"
)

// CheckoutResult carries the outcome of a settled checkout.
type CheckoutResult struct {
	// OrderID is the opaque identifier issued by the settlement endpoint.
	OrderID string
}

// CheckoutCommandHandler orchestrates the checkout flow:
// Idle -> Submitting -> {Settled, Rejected, Failed}.
//
// A non-empty cart is submitted in full to the settlement gateway. On
// settlement the cart is cleared and the empty slot persisted before the
// order identifier is returned. On rejection or transport failure the cart
// is left untouched; the two outcomes are observably identical to the
// caller but a transport fault is logged as such. There is no retry logic;
// the caller may re-invoke checkout manually.
type CheckoutCommandHandler struct {
	uowFactory CartUoWFactory
	gateway    ports.SettlementGateway
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CartUoWFactory,
	gateway ports.SettlementGateway,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle processes the checkout command.
// Returns ErrCartIsEmpty without any settlement exchange when the cart has
// no line items. The settlement call happens outside the transaction; only
// the clearing of the cart runs transactionally after a settled outcome.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.CartRepository().Get(ctx, cmd.CartID())
	if err != nil {
		return CheckoutResult{}, err
	}

	if aggregate.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	orderID, err := h.gateway.Settle(ctx, aggregate.Items(), ports.Customer{Name: cmd.CustomerName()})
	if err != nil {
		if errors.Is(err, ports.ErrSettlementUnavailable) {
			h.logger.ErrorContext(ctx, "Settlement transport failure",
				"cartId", cmd.CartID().String(), "error", err)
		}
		return CheckoutResult{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate.Clear()
	if err = uow.CartRepository().Save(ctx, aggregate); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{OrderID: orderID}, nil
}
