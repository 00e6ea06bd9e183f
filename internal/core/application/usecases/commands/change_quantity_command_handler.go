package commands

import (
	"context"
)

// ChangeQuantityCommandHandler handles the business logic for quantity
// adjustments. An unknown key is a silent no-op; the cart is persisted
// either way so the durable slot always reflects the last mutation.
type ChangeQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeQuantityCommandHandler creates a handler for quantity adjustments.
func NewChangeQuantityCommandHandler(uowFactory CartUoWFactory) ChangeQuantityCommandHandler {
	return ChangeQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the change-quantity command.
// The new quantity is max(1, quantity+delta); decrementing below 1 clamps
// rather than removing the line item.
func (h *ChangeQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	aggregate.ChangeQuantity(cmd.Key(), cmd.Delta())

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
