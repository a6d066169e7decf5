package cart_controller

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the cart summary
// @Description Returns the aggregated cart: one line per entry whose product exists, with unit price, quantity and subtotal, plus the grand total
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	summary := services.SummarizeCart(sess.Products, sess.Cart)
	sess.Unlock()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", summary))
}
