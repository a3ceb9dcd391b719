package api

import (
	"inventory-system/internal/api/handlers"
	"inventory-system/internal/api/interfaces"
	"inventory-system/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	cfg := services.GetConfig()

	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS(cfg.API.CORS))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.RateLimit(cfg.API.RateLimit))

	// Health check (no auth required)
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/ping", handlers.HealthCheck(services))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		setupPublicRoutes(v1, services)
		setupAuthenticatedRoutes(v1, services)
		setupAdminRoutes(v1, services)
		setupWebSocketRoutes(v1, services)
	}
}

// setupPublicRoutes configures routes that don't require authentication
func setupPublicRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	public := rg.Group("/public")
	{
		public.GET("/status", handlers.GetSystemStatus(services))
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", handlers.Login(services))
		auth.POST("/register", handlers.Register(services))
	}
}

// setupAuthenticatedRoutes configures routes that require authentication
func setupAuthenticatedRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	authenticated := rg.Group("/")
	authenticated.Use(middlewares.AuthRequired(services))
	{
		// Product endpoints
		products := authenticated.Group("/products")
		{
			products.GET("", handlers.ListProducts(services))
			products.GET("/:id", handlers.GetProduct(services))
			products.POST("", handlers.CreateProduct(services))
			products.PUT("/:id", handlers.UpdateProduct(services))
			products.DELETE("/:id", handlers.DeleteProduct(services))
			products.POST("/:id/stock", handlers.AdjustStock(services))
		}

		// Category endpoints
		authenticated.GET("/categories", handlers.ListCategories(services))

		// User profile
		authenticated.GET("/user/profile", handlers.GetProfile(services))
	}
}

// setupAdminRoutes configures admin-only routes
func setupAdminRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	admin := rg.Group("/admin")
	admin.Use(middlewares.AuthRequired(services))
	admin.Use(middlewares.AdminRequired())
	{
		admin.POST("/categories", handlers.CreateCategory(services))
		admin.GET("/users", handlers.ListUsers(services))
		admin.GET("/audit/logs", handlers.GetAuditLogs(services))
	}
}

// setupWebSocketRoutes configures WebSocket endpoints
func setupWebSocketRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	ws := rg.Group("/ws")
	ws.Use(middlewares.WSAuthRequired(services))
	{
		ws.GET("/inventory", handlers.InventoryUpdatesWebSocket(services))
	}
}
