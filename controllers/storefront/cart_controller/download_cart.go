package cart_controller

import (
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// DownloadCart godoc
// @Summary Download the cart as a JSON document
// @Description Serves the current cart as an indented UTF-8 JSON attachment (carrito.json), one record per line with id, name, unit price and quantity
// @Tags Storefront - Cart
// @Produce json
// @Success 200 "carrito.json attachment"
// @Failure 500 {object} models.ApiResponse "Failed to render cart document"
// @Router /store/cart/download [get]
func DownloadCart(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	document, err := services.ExportCart(sess.Products, sess.Cart)
	sess.Unlock()

	if err != nil {
		log.Printf("[store.cart-download] render failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render cart document"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="carrito.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", document)
}
