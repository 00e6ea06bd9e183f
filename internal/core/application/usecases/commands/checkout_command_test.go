package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		// Given
		cartID := kernel.NewUUID()

		// When
		cmd, err := commands.NewCheckoutCommand(cartID, "Guest")

		// Then
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cartID.IsEqual(cmd.CartID()))
		assert.Equal(t, "Guest", cmd.CustomerName())
	})

	t.Run("rejects_empty_customer_name", func(t *testing.T) {
		// When
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), "")

		// Then
		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("rejects_unconstructed_cart_id", func(t *testing.T) {
		// When
		_, err := commands.NewCheckoutCommand(kernel.UUID{}, "Guest")

		// Then
		require.Error(t, err)
	})
}

func TestCheckoutCommand_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		cmd := commands.CheckoutCommand{}

		// When
		err := cmd.Validate()

		// Then
		assert.Equal(t, commands.ErrCheckoutCommandIsNotConstructed, err)
	})
}
