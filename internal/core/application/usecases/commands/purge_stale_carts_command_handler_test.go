package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurgeStaleCartsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeStaleCartsCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("RemoveStale", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeStaleCartsCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	// The cutoff passed to the repository is retention back from now.
	cutoff := repo.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Minute)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeStaleCartsCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeStaleCartsCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("RemoveStale", ctx, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("db error")).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeStaleCartsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPurgeStaleCartsCommandHandler_Handle_ValidationError(t *testing.T) {
	// Given
	factory := new(MockCartUoWFactory)
	h := commands.NewPurgeStaleCartsCommandHandler(factory)

	// When
	_, err := h.Handle(t.Context(), commands.PurgeStaleCartsCommand{})

	// Then
	require.ErrorIs(t, err, commands.ErrPurgeStaleCartsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
