package product_controller

import (
	"net/http"
	"strconv"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get single product details
// @Description Get one catalog product by its numeric id
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	product, err := services.FindProduct(sess.Products, productID)
	if err == nil {
		// copy before releasing the lock
		p := *product
		product = &p
	}
	sess.Unlock()

	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
