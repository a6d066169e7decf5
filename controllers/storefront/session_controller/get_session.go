package session_controller

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

// GetSession godoc
// @Summary Get session info
// @Description Returns the current demo session's id, lifetime and cart size
// @Tags Storefront - Session
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SessionInfo}
// @Router /store/session [get]
func GetSession(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.Lock()
	info := sess.Info()
	sess.Unlock()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session fetched successfully", info))
}
