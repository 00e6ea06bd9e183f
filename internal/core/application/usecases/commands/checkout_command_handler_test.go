package commands_test

import (
	"log/slog"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCommandHandler_Handle_Settled(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	aggregate, _ := cartWithItem(t, cartID, "lip-01", "Red")

	cmd, err := commands.NewCheckoutCommand(cartID, "Guest")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("Get", ctx, cartID).Return(aggregate, nil).Once()
	repo.On("Save", ctx, aggregate).Return(nil).Once()

	uow := new(MockCartUoW)
	uow.On("CartRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway)
	gateway.On("Settle", ctx, mock.Anything, ports.Customer{Name: "Guest"}).
		Return("ORD-ABC12345", nil).Once()

	h := commands.NewCheckoutCommandHandler(factory, gateway, slog.Default())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "ORD-ABC12345", result.OrderID)
	// Settlement clears the cart; the empty slot is persisted.
	assert.True(t, aggregate.IsEmpty())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	aggregate, err := cart.NewCart(cartID)
	require.NoError(t, err)

	cmd, err := commands.NewCheckoutCommand(cartID, "Guest")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("Get", ctx, cartID).Return(aggregate, nil).Once()

	uow := new(MockCartUoW)
	uow.On("CartRepository").Return(repo).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway)

	h := commands.NewCheckoutCommandHandler(factory, gateway, slog.Default())
	_, err = h.Handle(ctx, cmd)

	// No settlement exchange and no transaction for an empty cart.
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	gateway.AssertNotCalled(t, "Settle")
	uow.AssertNotCalled(t, "Begin", ctx)
}

func TestCheckoutCommandHandler_Handle_Rejected(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	aggregate, _ := cartWithItem(t, cartID, "lip-01", "Red")

	cmd, err := commands.NewCheckoutCommand(cartID, "Guest")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("Get", ctx, cartID).Return(aggregate, nil).Once()

	uow := new(MockCartUoW)
	uow.On("CartRepository").Return(repo).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway)
	gateway.On("Settle", ctx, mock.Anything, ports.Customer{Name: "Guest"}).
		Return("", ports.ErrSettlementRejected).Once()

	h := commands.NewCheckoutCommandHandler(factory, gateway, slog.Default())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrSettlementRejected)
	// The cart is left untouched for a manual retry.
	assert.Equal(t, 1, len(aggregate.Items()))
	uow.AssertNotCalled(t, "Begin", ctx)
	repo.AssertNotCalled(t, "Save", ctx, aggregate)
}

func TestCheckoutCommandHandler_Handle_TransportFailure(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	aggregate, _ := cartWithItem(t, cartID, "lip-01", "Red")

	cmd, err := commands.NewCheckoutCommand(cartID, "Guest")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("Get", ctx, cartID).Return(aggregate, nil).Once()

	uow := new(MockCartUoW)
	uow.On("CartRepository").Return(repo).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway)
	gateway.On("Settle", ctx, mock.Anything, ports.Customer{Name: "Guest"}).
		Return("", ports.ErrSettlementUnavailable).Once()

	h := commands.NewCheckoutCommandHandler(factory, gateway, slog.Default())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrSettlementUnavailable)
	assert.Equal(t, 1, len(aggregate.Items()))
	uow.AssertNotCalled(t, "Begin", ctx)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	// Given
	factory := new(MockCartUoWFactory)
	gateway := new(MockSettlementGateway)
	h := commands.NewCheckoutCommandHandler(factory, gateway, slog.Default())

	// When
	_, err := h.Handle(t.Context(), commands.CheckoutCommand{})

	// Then
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
