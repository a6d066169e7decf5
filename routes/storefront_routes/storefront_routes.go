package storefront_routes

import (
	store_analytics "github.com/MiniShop-Demo/minishop-demo-backend/controllers/storefront/analytics_controller"
	store_cart "github.com/MiniShop-Demo/minishop-demo-backend/controllers/storefront/cart_controller"
	store_filter "github.com/MiniShop-Demo/minishop-demo-backend/controllers/storefront/filter_controller"
	store_product "github.com/MiniShop-Demo/minishop-demo-backend/controllers/storefront/product_controller"
	store_session "github.com/MiniShop-Demo/minishop-demo-backend/controllers/storefront/session_controller"
	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, session-scoped)
	store := router.Group("/store")
	store.Use(middleware.SessionMiddleware())

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts)        // List with filters
		products.GET("/:id", store_product.GetProductByID) // Single product
	}

	store.GET("/stats", store_product.GetCatalogStats)

	// Filter routes
	filters := store.Group("/filters")
	{
		filters.PUT("", store_filter.ApplyFilters)
		filters.GET("/metadata", store_filter.GetFilterMetadata)
	}

	// Cart routes
	cart := store.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.POST("/items", store_cart.AddCartItem)
		cart.PUT("/items/:id", store_cart.UpdateCartItem)
		cart.POST("/checkout", store_cart.CheckoutCart)
		cart.GET("/download", store_cart.DownloadCart)
	}

	// Insights
	store.GET("/insights/sales", store_analytics.GetSalesEstimates)

	// Session routes
	session := store.Group("/session")
	{
		session.GET("", store_session.GetSession)
		session.POST("/reset", store_session.ResetDemo)
	}
}
