package contact_routes

import (
	"github.com/MiniShop-Demo/minishop-demo-backend/controllers/contact/contact_controller"
	"github.com/gin-gonic/gin"
)

func SetupContactRoutes(router *gin.RouterGroup) {
	// Standalone contact form; no session needed.
	router.POST("/contact", contact_controller.SubmitContact)
}
