package models

// SalesEstimate is one bar of the demo sales chart: a deterministic estimate
// derived from price and stock, not real sales data.
type SalesEstimate struct {
	ProductID      int     `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	EstimatedSales float64 `json:"estimated_sales"`
}

// CategorySales is the per-category rollup of the estimates.
type CategorySales struct {
	Category       string  `json:"category"`
	EstimatedSales float64 `json:"estimated_sales"`
}

// SalesInsights bundles both views for the chart endpoint.
type SalesInsights struct {
	Products   []SalesEstimate `json:"products"`
	Categories []CategorySales `json:"categories"`
}
