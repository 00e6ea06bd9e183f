package filecatalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/adapters/out/filecatalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T, products, artists string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(products), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "artists.json"), []byte(artists), 0o644))
	return dir
}

func TestProvider_Products(t *testing.T) {
	dir := writeDataDir(t, `[
		{"id":"lip-01","name":"Velvet Lipstick","price":49.99,
		 "description":"Matte finish","image":"/img/lip-01.jpg","shades":["Red","Nude"]},
		{"id":"blush-02","name":"Silk Blush","price":25,"shades":["Peach"]}
	]`, `[]`)

	provider := filecatalog.NewProvider(dir)
	products, err := provider.Products(t.Context())

	require.NoError(t, err)
	require.Len(t, products, 2)

	// File order is the listing order.
	assert.Equal(t, "lip-01", products[0].ID)
	assert.Equal(t, "Velvet Lipstick", products[0].Name)
	assert.Equal(t, kernel.Price(4999), products[0].Price)
	assert.Equal(t, []string{"Red", "Nude"}, products[0].Variants)
	assert.Equal(t, "blush-02", products[1].ID)
	assert.Equal(t, kernel.Price(2500), products[1].Price)
}

func TestProvider_ProductByID(t *testing.T) {
	dir := writeDataDir(t, `[
		{"id":"lip-01","name":"Velvet Lipstick","price":49.99,"shades":["Red"]}
	]`, `[]`)

	provider := filecatalog.NewProvider(dir)

	t.Run("known_product", func(t *testing.T) {
		product, err := provider.ProductByID(t.Context(), "lip-01")

		require.NoError(t, err)
		assert.Equal(t, "Velvet Lipstick", product.Name)
	})

	t.Run("unknown_product", func(t *testing.T) {
		_, err := provider.ProductByID(t.Context(), "ghost")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestProvider_Artists(t *testing.T) {
	dir := writeDataDir(t, `[]`, `[
		{"name":"Mia Laurent","role":"Editorial Makeup Artist","bio":"Paris based","image":"/img/mia.jpg"}
	]`)

	provider := filecatalog.NewProvider(dir)
	artists, err := provider.Artists(t.Context())

	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Mia Laurent", artists[0].Name)
	assert.Equal(t, "Editorial Makeup Artist", artists[0].Role)
}

func TestProvider_MissingFile(t *testing.T) {
	provider := filecatalog.NewProvider(t.TempDir())

	_, err := provider.Products(t.Context())

	require.Error(t, err)
}

func TestProvider_MalformedFile(t *testing.T) {
	dir := writeDataDir(t, `{"not":"an array"}`, `[]`)

	provider := filecatalog.NewProvider(dir)
	_, err := provider.Products(t.Context())

	require.Error(t, err)
}

func TestProvider_NegativePriceIsRejected(t *testing.T) {
	dir := writeDataDir(t, `[{"id":"lip-01","name":"Bad","price":-1}]`, `[]`)

	provider := filecatalog.NewProvider(dir)
	_, err := provider.Products(t.Context())

	require.Error(t, err)
}
