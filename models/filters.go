package models

// CategoryAll is the wildcard category selector: every product passes.
const CategoryAll = "all"

// FilterCriteria is the storefront filter state for a session: search text
// (matched case-insensitively against name and description), a category
// selector and an inclusive price range. Nil price bounds are unbounded.
type FilterCriteria struct {
	Query    string   `json:"q"`
	Category string   `json:"category"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

// DefaultFilterCriteria matches the whole catalog.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{Category: CategoryAll}
}

// FilterMetadata is everything the storefront sidebar needs to render its
// filter widgets.
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []CategoryData    `json:"categories"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

// AvailabilityData counts products in and out of stock.
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// CategoryData is one selectable category with its product count.
type CategoryData struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// PriceRangeData is the minimum and maximum price across the catalog.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
