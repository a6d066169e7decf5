package filter_controller

import (
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

// ApplyFilters godoc
// @Summary Apply filter criteria
// @Description Saves the filter criteria on the session; subsequent product listings use them until changed or reset. An empty category is treated as 'all'.
// @Tags Storefront - Filters
// @Accept json
// @Produce json
// @Param criteria body models.FilterCriteria true "Filter criteria"
// @Success 200 {object} models.ApiResponse{data=models.FilterCriteria}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /store/filters [put]
func ApplyFilters(c *gin.Context) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if criteria.Category == "" {
		criteria.Category = models.CategoryAll
	}
	// Clamp a negative lower bound; prices are non-negative anyway.
	if criteria.MinPrice != nil && *criteria.MinPrice < 0 {
		zero := 0.0
		criteria.MinPrice = &zero
	}

	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.Lock()
	sess.Filters = criteria
	sess.Unlock()

	log.Printf("[store.filters] session=%s applied q=%q category=%q", sess.ID, criteria.Query, criteria.Category)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters applied successfully", criteria))
}
