package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// CheckoutCart godoc
// @Summary Simulate a purchase
// @Description Decrements each cart line's product stock (floored at zero) and clears the cart. No payment is involved; this is a demo checkout.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.PurchaseResult}
// @Failure 409 {object} models.ApiResponse "Cart is empty"
// @Router /store/cart/checkout [post]
func CheckoutCart(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	result, err := services.SimulatePurchase(sess)
	sess.Unlock()

	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to simulate purchase"))
		return
	}

	log.Printf("[store.checkout] session=%s lines=%d total=%.2f", sess.ID, len(result.Lines), result.Total)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchase simulated: stock updated and cart cleared", result))
}
