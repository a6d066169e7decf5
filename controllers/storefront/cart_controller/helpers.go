package cart_controller

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

func requireSession(c *gin.Context) (*models.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}
