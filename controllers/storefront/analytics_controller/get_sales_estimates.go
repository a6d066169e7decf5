package analytics_controller

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// GetSalesEstimates godoc
// @Summary Get demo sales estimates
// @Description Deterministic per-product sales estimates (price x stock x fixed scale factor) and their per-category totals, for the demo chart. Not real sales data.
// @Tags Storefront - Insights
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SalesInsights}
// @Router /store/insights/sales [get]
func GetSalesEstimates(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.Lock()
	insights := services.EstimateSales(sess.Products)
	sess.Unlock()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales estimates fetched successfully", insights))
}
