package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCartQuery(t *testing.T) {
	t.Run("creates_valid_query", func(t *testing.T) {
		// Given
		cartID := kernel.NewUUID()

		// When
		query, err := queries.NewGetCartQuery(cartID)

		// Then
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, cartID.IsEqual(query.CartID()))
	})

	t.Run("rejects_unconstructed_cart_id", func(t *testing.T) {
		// When
		_, err := queries.NewGetCartQuery(kernel.UUID{})

		// Then
		require.Error(t, err)
	})
}

func TestGetCartQuery_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		query := queries.GetCartQuery{}

		// When
		err := query.Validate()

		// Then
		assert.Equal(t, queries.ErrGetCartQueryIsNotConstructed, err)
	})
}
