package services

import (
	"sort"
	"strings"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
)

// FilterProducts returns the subset of products matching the criteria, in
// input order. An empty query passes everything, as does the "all" category;
// both price bounds are inclusive and nil means unbounded. An empty result
// is a valid outcome, not an error.
func FilterProducts(products []models.Product, criteria models.FilterCriteria) []models.Product {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if criteria.Category != "" && criteria.Category != models.CategoryAll && p.Category != criteria.Category {
			continue
		}
		if criteria.MinPrice != nil && p.Price < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && p.Price > *criteria.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FindProduct looks a product up by id.
func FindProduct(products []models.Product, id int) (*models.Product, error) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, models.ErrProductNotFound
}

// CatalogStats computes the storefront's quick stats tiles.
func CatalogStats(products []models.Product) models.CatalogStats {
	categories := make(map[string]struct{})
	totalStock := 0
	for _, p := range products {
		categories[p.Category] = struct{}{}
		totalStock += p.Stock
	}
	return models.CatalogStats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalStock:      totalStock,
	}
}

// FilterMetadata derives everything the filter sidebar needs: availability
// counts, the sorted category list with product counts, and the price range.
func FilterMetadata(products []models.Product) models.FilterMetadata {
	availability := &models.AvailabilityData{}
	counts := make(map[string]int)

	for _, p := range products {
		if p.Stock > 0 {
			availability.InStock++
		} else {
			availability.OutOfStock++
		}
		counts[p.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]models.CategoryData, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.CategoryData{Name: name, ProductCount: counts[name]})
	}

	var priceRange *models.PriceRangeData
	if len(products) > 0 {
		priceRange = &models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
		for _, p := range products[1:] {
			if p.Price < priceRange.Min {
				priceRange.Min = p.Price
			}
			if p.Price > priceRange.Max {
				priceRange.Max = p.Price
			}
		}
	}

	return models.FilterMetadata{
		Availability: availability,
		Categories:   categories,
		PriceRange:   priceRange,
	}
}
