// @title MiniShop Demo API
// @version 1.0
// @description In-memory demo storefront: catalog browsing, cart and simulated purchases. No database; every visitor gets a private session.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MiniShop-Demo/minishop-demo-backend/config"
	_ "github.com/MiniShop-Demo/minishop-demo-backend/docs"
	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/routes/contact_routes"
	"github.com/MiniShop-Demo/minishop-demo-backend/routes/storefront_routes"
	session_store "github.com/MiniShop-Demo/minishop-demo-backend/sessions"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	// Session store
	session_store.Init(cfg.SessionTTL)
	stop := make(chan struct{})
	defer close(stop)
	go session_store.StartCleanupLoop(cfg.SessionSweep, stop)
	log.Println("✅ Session store initialized")

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "ok",
			"sessions": session_store.Count(),
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg.RateLimitMax, cfg.RateLimitWin))

	storefront_routes.SetupStorefrontRoutes(api)
	contact_routes.SetupContactRoutes(api)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("🚀 MiniShop demo backend listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
