package session_controller

import (
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

// ResetDemo godoc
// @Summary Reset the demo session
// @Description Restores the original 8-product catalog, empties the cart and clears the saved filter criteria
// @Tags Storefront - Session
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SessionInfo}
// @Router /store/session/reset [post]
func ResetDemo(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.Lock()
	sess.Reset()
	info := sess.Info()
	sess.Unlock()

	log.Printf("[store.reset] session=%s restored to defaults", sess.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Demo reset: catalog restored and cart cleared", info))
}
