package product_controller

import (
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List catalog products
// @Description Returns the session's catalog filtered by the saved criteria. Query parameters override individual saved fields for this request only.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description, case-insensitive)"
// @Param category query string false "Category name, or 'all'"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	criteria := criteriaFromQuery(c, sess.Filters)
	filtered := services.FilterProducts(sess.Products, criteria)
	sess.Unlock()

	log.Printf("[store.products] session=%s matched=%d", sess.ID, len(filtered))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products": filtered,
		"count":    len(filtered),
		"criteria": criteria,
	}))
}
