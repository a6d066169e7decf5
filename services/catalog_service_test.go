package services

import (
	"testing"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestFilterProducts(t *testing.T) {
	catalog := models.DefaultProducts()

	t.Run("Open criteria returns full catalog in order", func(t *testing.T) {
		filtered := FilterProducts(catalog, models.DefaultFilterCriteria())

		require.Len(t, filtered, len(catalog))
		for i, p := range filtered {
			assert.Equal(t, catalog[i].ID, p.ID)
		}
	})

	t.Run("Impossible price band returns empty set", func(t *testing.T) {
		criteria := models.FilterCriteria{
			Category: models.CategoryAll,
			MinPrice: floatPtr(1000),
			MaxPrice: floatPtr(5),
		}

		filtered := FilterProducts(catalog, criteria)

		require.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})

	t.Run("Search matches name case-insensitively", func(t *testing.T) {
		criteria := models.FilterCriteria{Query: "CAMISETA", Category: models.CategoryAll}

		filtered := FilterProducts(catalog, criteria)

		require.Len(t, filtered, 1)
		assert.Equal(t, 1, filtered[0].ID)
	})

	t.Run("Search matches description", func(t *testing.T) {
		criteria := models.FilterCriteria{Query: "resistente al agua", Category: models.CategoryAll}

		filtered := FilterProducts(catalog, criteria)

		// Mochila urbana and Cámara de acción
		require.Len(t, filtered, 2)
		assert.Equal(t, 3, filtered[0].ID)
		assert.Equal(t, 8, filtered[1].ID)
	})

	t.Run("Category filter is exact", func(t *testing.T) {
		criteria := models.FilterCriteria{Category: "Ropa"}

		filtered := FilterProducts(catalog, criteria)

		require.Len(t, filtered, 2)
		for _, p := range filtered {
			assert.Equal(t, "Ropa", p.Category)
		}
	})

	t.Run("Price bounds are inclusive", func(t *testing.T) {
		criteria := models.FilterCriteria{
			Category: models.CategoryAll,
			MinPrice: floatPtr(19.99),
			MaxPrice: floatPtr(19.99),
		}

		filtered := FilterProducts(catalog, criteria)

		require.Len(t, filtered, 1)
		assert.Equal(t, "Camiseta básica", filtered[0].Name)
	})

	t.Run("Empty category behaves like wildcard", func(t *testing.T) {
		filtered := FilterProducts(catalog, models.FilterCriteria{})
		assert.Len(t, filtered, len(catalog))
	})
}

func TestFindProduct(t *testing.T) {
	catalog := models.DefaultProducts()

	product, err := FindProduct(catalog, 5)
	require.NoError(t, err)
	assert.Equal(t, "Taza térmica", product.Name)

	_, err = FindProduct(catalog, 999)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestCatalogStats(t *testing.T) {
	stats := CatalogStats(models.DefaultProducts())

	assert.Equal(t, 8, stats.TotalProducts)
	assert.Equal(t, 5, stats.TotalCategories)
	assert.Equal(t, 125, stats.TotalStock)
}

func TestFilterMetadata(t *testing.T) {
	catalog := models.DefaultProducts()
	metadata := FilterMetadata(catalog)

	require.NotNil(t, metadata.Availability)
	assert.Equal(t, 8, metadata.Availability.InStock)
	assert.Equal(t, 0, metadata.Availability.OutOfStock)

	require.Len(t, metadata.Categories, 5)
	// sorted by name
	assert.Equal(t, "Accesorios", metadata.Categories[0].Name)
	assert.Equal(t, 2, metadata.Categories[0].ProductCount)

	require.NotNil(t, metadata.PriceRange)
	assert.Equal(t, 14.0, metadata.PriceRange.Min)
	assert.Equal(t, 199.0, metadata.PriceRange.Max)

	t.Run("Out of stock products are counted", func(t *testing.T) {
		catalog[0].Stock = 0
		metadata := FilterMetadata(catalog)
		assert.Equal(t, 7, metadata.Availability.InStock)
		assert.Equal(t, 1, metadata.Availability.OutOfStock)
	})

	t.Run("Empty catalog has no price range", func(t *testing.T) {
		metadata := FilterMetadata(nil)
		assert.Nil(t, metadata.PriceRange)
		assert.Empty(t, metadata.Categories)
	})
}
