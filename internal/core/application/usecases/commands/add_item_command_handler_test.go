package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T) catalog.Product {
	t.Helper()
	price, err := kernel.NewPriceFromFloat(499)
	require.NoError(t, err)
	return catalog.Product{
		ID:       "lip-01",
		Name:     "Velvet Lipstick",
		Price:    price,
		Image:    "/img/lip-01.jpg",
		Variants: []string{"Red", "Nude"},
	}
}

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(cartID, "lip-01", "")

	aggregate, err := cart.NewCart(cartID)
	require.NoError(t, err)

	provider := new(MockCatalogProvider)
	provider.On("ProductByID", ctx, "lip-01").Return(testProduct(t), nil).Once()

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, cartID).Return(aggregate, nil).Once(),
		repo.On("Save", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, provider)
	require.NoError(t, h.Handle(ctx, cmd))

	// No explicit variant: the first listed catalog variant is chosen.
	items := aggregate.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Red", items[0].Variant())
	assert.Equal(t, "Velvet Lipstick", items[0].DisplayName())

	provider.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_MergesRepeatedAdds(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(cartID, "lip-01", "Red")

	aggregate, err := cart.NewCart(cartID)
	require.NoError(t, err)

	provider := new(MockCatalogProvider)
	provider.On("ProductByID", ctx, "lip-01").Return(testProduct(t), nil).Times(2)

	repo := new(MockCartRepository)
	repo.On("Get", ctx, cartID).Return(aggregate, nil).Times(2)
	repo.On("Save", ctx, aggregate).Return(nil).Times(2)

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CartRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAddItemCommandHandler(factory, provider)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NoError(t, h.Handle(ctx, cmd))

	items := aggregate.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity())
}

func TestAddItemCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddItemCommand(kernel.NewUUID(), "ghost", "")

	provider := new(MockCatalogProvider)
	provider.On("ProductByID", ctx, "ghost").
		Return(catalog.Product{}, errs.NewObjectNotFoundError("productId", "ghost")).Once()

	factory := new(MockCartUoWFactory)

	h := commands.NewAddItemCommandHandler(factory, provider)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemCommand{} // not constructed properly

	h := commands.NewAddItemCommandHandler(new(MockCartUoWFactory), new(MockCatalogProvider))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestAddItemCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(cartID, "lip-01", "Red")

	aggregate, err := cart.NewCart(cartID)
	require.NoError(t, err)

	provider := new(MockCatalogProvider)
	provider.On("ProductByID", ctx, "lip-01").Return(testProduct(t), nil).Once()

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, cartID).Return(aggregate, nil).Once(),
		repo.On("Save", ctx, aggregate).Return(errors.New("save error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, provider)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", ctx)
}
