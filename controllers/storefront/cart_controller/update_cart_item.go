package cart_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Update a cart line
// @Description Overwrites the quantity of an existing cart line. A quantity of zero (or less) removes the line entirely.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse "Invalid product ID or body"
// @Failure 404 {object} models.ApiResponse "No such cart line"
// @Router /store/cart/items/{id} [put]
func UpdateCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	err = services.UpdateCartLine(sess.Products, sess.Cart, productID, req.Quantity)
	var summary models.CartSummary
	if err == nil {
		summary = services.SummarizeCart(sess.Products, sess.Cart)
	}
	sess.Unlock()

	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No such cart line"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	log.Printf("[store.cart-update] session=%s product=%d qty=%d", sess.ID, productID, req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", summary))
}
