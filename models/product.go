package models

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Product is a single catalog record. Everything except Stock is fixed for
// the lifetime of a session; Stock only decreases on a simulated purchase.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// defaultProducts is the fixed demo catalog. Sessions get copies of this
// slice; it is never mutated in place.
var defaultProducts = []Product{
	{ID: 1, Name: "Camiseta básica", Category: "Ropa", Price: 19.99, Stock: 24, Description: "Algodón 100% — cómoda y ligera"},
	{ID: 2, Name: "Zapatillas Runner", Category: "Calzado", Price: 89.99, Stock: 10, Description: "Agarre superior, amortiguación perfecta"},
	{ID: 3, Name: "Mochila urbana", Category: "Accesorios", Price: 49.5, Stock: 15, Description: "Resistente al agua, 20L"},
	{ID: 4, Name: "Auriculares inalámbricos", Category: "Electrónica", Price: 129.0, Stock: 6, Description: "Cancelación de ruido"},
	{ID: 5, Name: "Taza térmica", Category: "Hogar", Price: 14.0, Stock: 40, Description: "Mantiene la temperatura por horas"},
	{ID: 6, Name: "Pantalón jeans", Category: "Ropa", Price: 39.9, Stock: 18, Description: "Estilo clásico, corte recto"},
	{ID: 7, Name: "Reloj deportivo", Category: "Accesorios", Price: 59.99, Stock: 8, Description: "Resistente y ligero"},
	{ID: 8, Name: "Cámara de acción", Category: "Electrónica", Price: 199.0, Stock: 4, Description: "4K, resistente al agua hasta 30m"},
}

// DefaultProducts returns a fresh copy of the seed catalog, safe for a
// session to mutate.
func DefaultProducts() []Product {
	products := make([]Product, len(defaultProducts))
	copy(products, defaultProducts)
	return products
}

// CatalogStats are the storefront's quick stats tiles.
type CatalogStats struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	TotalStock      int `json:"total_stock"`
}
