package product_controller

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCatalogStats godoc
// @Summary Get catalog quick stats
// @Description Product count, category count and total stock for the session's catalog
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CatalogStats}
// @Router /store/stats [get]
func GetCatalogStats(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	sess.Lock()
	stats := services.CatalogStats(sess.Products)
	sess.Unlock()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog stats fetched successfully", stats))
}
