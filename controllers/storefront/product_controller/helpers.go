package product_controller

import (
	"net/http"
	"strconv"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// requireSession pulls the session attached by the middleware, answering
// 500 if it is missing (which means the route was mounted without it).
func requireSession(c *gin.Context) (*models.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}

// criteriaFromQuery overlays query parameters onto the session's saved
// criteria. Absent parameters keep whatever the visitor last applied.
func criteriaFromQuery(c *gin.Context, saved models.FilterCriteria) models.FilterCriteria {
	criteria := saved

	if q, ok := c.GetQuery("q"); ok {
		criteria.Query = q
	}
	if category, ok := c.GetQuery("category"); ok {
		criteria.Category = category
	}
	if minStr, ok := c.GetQuery("minPrice"); ok {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			criteria.MinPrice = &min
		}
	}
	if maxStr, ok := c.GetQuery("maxPrice"); ok {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			criteria.MaxPrice = &max
		}
	}
	return criteria
}
