package services

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
)

// SummarizeCart joins each cart entry with its product and totals the lines.
// Entries referencing a product that no longer exists are skipped silently
// and contribute nothing; they are a no-op by design, not an error.
func SummarizeCart(products []models.Product, cart models.Cart) models.CartSummary {
	summary := models.CartSummary{Lines: make([]models.CartLine, 0, len(cart))}

	// Stable line order: walk the catalog, not the map.
	for _, p := range products {
		qty, ok := cart[strconv.Itoa(p.ID)]
		if !ok {
			continue
		}
		line := models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  qty,
			Subtotal:  p.Price * float64(qty),
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalItems += qty
		summary.Total += line.Subtotal
	}
	return summary
}

// AddToCart increments the cart entry for productID. The requested quantity
// is clamped to [1, current stock]; a product with no stock left cannot be
// added. Returns the quantity actually added.
func AddToCart(products []models.Product, cart models.Cart, productID, quantity int) (int, error) {
	product, err := FindProduct(products, productID)
	if err != nil {
		return 0, err
	}
	if product.Stock <= 0 {
		return 0, models.ErrProductNotFound
	}

	if quantity < 1 {
		quantity = 1
	}
	if quantity > product.Stock {
		quantity = product.Stock
	}

	cart[strconv.Itoa(productID)] += quantity
	return quantity, nil
}

// UpdateCartLine overwrites the quantity of an existing line. Zero (or a
// negative value, clamped to zero) removes the line entirely.
func UpdateCartLine(products []models.Product, cart models.Cart, productID, quantity int) error {
	key := strconv.Itoa(productID)
	if _, ok := cart[key]; !ok {
		return models.ErrProductNotFound
	}

	if quantity <= 0 {
		delete(cart, key)
		return nil
	}
	cart[key] = quantity
	return nil
}

// SimulatePurchase runs the checkout: every cart line decrements its
// product's stock, floored at zero, and the cart is cleared afterwards. The
// stock updates are computed for the whole cart before the cart is emptied.
// An empty cart is a no-op.
func SimulatePurchase(sess *models.Session) (models.PurchaseResult, error) {
	summary := SummarizeCart(sess.Products, sess.Cart)
	if len(summary.Lines) == 0 {
		return models.PurchaseResult{}, models.ErrEmptyCart
	}

	result := models.PurchaseResult{
		Lines:        summary.Lines,
		Total:        summary.Total,
		StockUpdates: make([]models.StockUpdate, 0, len(summary.Lines)),
	}

	for _, line := range summary.Lines {
		for i := range sess.Products {
			if sess.Products[i].ID != line.ProductID {
				continue
			}
			oldStock := sess.Products[i].Stock
			newStock := oldStock - line.Quantity
			if newStock < 0 {
				newStock = 0
			}
			sess.Products[i].Stock = newStock
			result.StockUpdates = append(result.StockUpdates, models.StockUpdate{
				ProductID: line.ProductID,
				OldStock:  oldStock,
				NewStock:  newStock,
			})
			break
		}
	}

	sess.Cart = make(models.Cart)
	return result, nil
}

// ExportCart renders the downloadable cart document: one key-value record
// per line, indented UTF-8 JSON, no HTML escaping so accented product names
// survive untouched.
func ExportCart(products []models.Product, cart models.Cart) ([]byte, error) {
	summary := SummarizeCart(products, cart)

	lines := make([]models.CartExportLine, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		lines = append(lines, models.CartExportLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lines); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
