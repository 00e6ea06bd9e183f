package commands

import (
	"context"
)

// RemoveItemCommandHandler handles the business logic for removing a line
// item from a cart. The removal of an absent key still persists the cart,
// keeping the durable slot in step with the in-memory state.
type RemoveItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for remove-from-cart operations.
func NewRemoveItemCommandHandler(uowFactory CartUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	aggregate.RemoveItem(cmd.Key())

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
