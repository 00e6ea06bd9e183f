package commands

import (
	"context"
	"time"
)

// PurgeStaleCartsCommandHandler deletes abandoned cart slots in a single
// transaction. Active carts are untouched; only slots whose last write is
// older than the retention window are removed.
type PurgeStaleCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPurgeStaleCartsCommandHandler creates a handler for cart purge operations.
func NewPurgeStaleCartsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of removed slots.
func (h *PurgeStaleCartsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().RemoveStale(ctx, time.Now().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
