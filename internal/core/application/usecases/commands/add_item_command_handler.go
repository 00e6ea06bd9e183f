package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// AddItemCommandHandler handles the business logic for adding a product to a
// cart. Resolves the catalog entry, picks the variant, merges by line item
// key or appends a new entry with an add-time snapshot, and persists the
// whole cart before returning.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory, catalogProvider)
//	cmd, _ := NewAddItemCommand(cartID, "lip-01", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("add to cart failed: %w", err)
//	}
type AddItemCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.CatalogProvider
}

// NewAddItemCommandHandler creates a handler for add-to-cart operations.
// Requires a CartUoWFactory for transactional persistence and a catalog
// provider for the add-time product snapshot.
func NewAddItemCommandHandler(uowFactory CartUoWFactory, catalog ports.CatalogProvider) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add-item command.
// Looks up the product, resolves the variant (explicit request wins, then
// the first listed variant, then the standard sentinel), and applies the
// merge-or-append rule to the cart. The mutated cart is persisted durably
// before control returns.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.ProductByID(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	key, err := kernel.NewLineItemKey(product.ID, product.PickVariant(cmd.Variant()))
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddItem(key, product.Price, product.Name, product.Image); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
