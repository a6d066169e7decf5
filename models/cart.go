package models

// Cart maps a stringified product id to the requested quantity. Quantities
// are always positive; an edit that drops a line to zero removes the key.
type Cart map[string]int

// CartLine is one aggregated cart row: the referenced product joined with
// the requested quantity.
type CartLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CartSummary is the full aggregated view of a cart. Entries referencing a
// product that no longer exists are skipped and contribute nothing.
type CartSummary struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"total_items"`
	Total      float64    `json:"total"`
}

// CartExportLine is one record of the downloadable cart document. It carries
// no subtotal; the export lists what the shopper picked, not the math.
type CartExportLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// AddCartItemRequest is the body of POST /store/cart/items.
type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required" example:"1"`
	Quantity  int `json:"quantity" binding:"required,min=1" example:"2"`
}

// UpdateCartItemRequest is the body of PUT /store/cart/items/:id. A quantity
// of zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"3"`
}

// PurchaseResult reports what a simulated purchase did: the lines that were
// "bought" and the stock levels after the decrement.
type PurchaseResult struct {
	Lines        []CartLine    `json:"lines"`
	Total        float64       `json:"total"`
	StockUpdates []StockUpdate `json:"stock_updates"`
}

type StockUpdate struct {
	ProductID int `json:"product_id"`
	OldStock  int `json:"old_stock"`
	NewStock  int `json:"new_stock"`
}
