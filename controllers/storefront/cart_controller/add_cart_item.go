package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Increments the cart entry for the product. The quantity is clamped to the product's remaining stock; repeated adds accumulate.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 404 {object} models.ApiResponse "Product not found or out of stock"
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	added, err := services.AddToCart(sess.Products, sess.Cart, req.ProductID, req.Quantity)
	var summary models.CartSummary
	if err == nil {
		summary = services.SummarizeCart(sess.Products, sess.Cart)
	}
	sess.Unlock()

	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found or out of stock"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add product to cart"))
		return
	}

	log.Printf("[store.cart-add] session=%s product=%d qty=%d", sess.ID, req.ProductID, added)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added to cart", summary))
}
