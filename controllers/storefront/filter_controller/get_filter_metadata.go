package filter_controller

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/MiniShop-Demo/minishop-demo-backend/services"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Availability counts, category list and price range for rendering the filter sidebar
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.Lock()
	metadata := services.FilterMetadata(sess.Products)
	sess.Unlock()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}
