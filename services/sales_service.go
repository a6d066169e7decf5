package services

import (
	"math"
	"sort"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
)

// salesScaleFactor converts current stock into an assumed unit volume for
// the demo chart. It is a fixed constant; the "simulation" is a pure
// function of price and stock.
const salesScaleFactor = 0.2

// EstimateSales computes the demo sales figures: per product,
// price * stock * scale factor, rounded to two decimals, plus the rollup by
// category for the bar chart.
func EstimateSales(products []models.Product) models.SalesInsights {
	insights := models.SalesInsights{
		Products: make([]models.SalesEstimate, 0, len(products)),
	}

	byCategory := make(map[string]float64)
	for _, p := range products {
		estimate := round2(p.Price * float64(p.Stock) * salesScaleFactor)
		insights.Products = append(insights.Products, models.SalesEstimate{
			ProductID:      p.ID,
			Name:           p.Name,
			Category:       p.Category,
			Price:          p.Price,
			Stock:          p.Stock,
			EstimatedSales: estimate,
		})
		byCategory[p.Category] += estimate
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	insights.Categories = make([]models.CategorySales, 0, len(names))
	for _, name := range names {
		insights.Categories = append(insights.Categories, models.CategorySales{
			Category:       name,
			EstimatedSales: round2(byCategory[name]),
		})
	}
	return insights
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
