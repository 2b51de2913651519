package main

import (
	"context"
	"net/http"
	"time"

	_ "karttem-admin/docs"
	"karttem-admin/internal/middleware"
	"karttem-admin/pkg/cache"
	"karttem-admin/pkg/database"
	"karttem-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupPanelRoutes()

	a.Router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}

// setupStaticRoutes configures documentation and ops endpoints
func (a *App) setupStaticRoutes() {
	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expose pprof profiling endpoints (disable in production)
	if !a.Config.IsProduction() {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		if database.MongoClient != nil {
			if err := database.MongoClient.Ping(ctx, nil); err != nil {
				logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupPanelRoutes configures the admin pages
func (a *App) setupPanelRoutes() {
	r := a.Router

	// Public routes
	r.GET("/login", a.AuthHandler.ShowLogin)
	r.POST("/login", middleware.RateLimitMiddleware(a.LoginRateLimiter), a.AuthHandler.Login)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(a.AuthService, a.Config.Session.CookieName))
	{
		protected.POST("/logout", a.AuthHandler.Logout)
		protected.GET("/", a.DashboardHandler.Summary)

		properties := protected.Group("/properties")
		{
			properties.GET("", a.PropertyHandler.GetProperties)
			properties.GET("/rented", a.PropertyHandler.GetRentedProperties)
			properties.GET("/sold", a.PropertyHandler.GetSoldProperties)
			properties.POST("", a.PropertyHandler.CreateProperty)
			properties.GET("/:id", a.PropertyHandler.GetPropertyByID)
			properties.POST("/:id", a.PropertyHandler.UpdateProperty)
			properties.PATCH("/:id/status", a.PropertyHandler.UpdatePropertyStatus)
			properties.DELETE("/:id", a.PropertyHandler.DeleteProperty)
			properties.GET("/:id/pdf", a.PropertyHandler.ExportPropertySheet)
		}

		owners := protected.Group("/owners")
		{
			owners.GET("", a.OwnerHandler.GetOwners)
			owners.GET("/search", a.OwnerHandler.SearchOwners)
			owners.GET("/document/:type/:number", a.OwnerHandler.GetOwnerByDocument)
			owners.GET("/:id", a.OwnerHandler.GetOwnerByID)
			owners.POST("", a.OwnerHandler.CreateOwner)
			owners.PUT("/:id", a.OwnerHandler.UpdateOwner)
			owners.DELETE("/:id", a.OwnerHandler.DeleteOwner)
		}

		users := protected.Group("/users")
		{
			users.GET("", a.UserHandler.GetUsers)
			users.GET("/:id", a.UserHandler.GetUserByID)
			users.POST("", a.UserHandler.CreateUser)
			users.PUT("/:id", a.UserHandler.UpdateUser)
			users.DELETE("/:id", a.UserHandler.DeleteUser)
		}

		types := protected.Group("/property-types")
		{
			types.GET("", a.PropertyTypeHandler.GetPropertyTypes)
			types.POST("", a.PropertyTypeHandler.CreatePropertyType)
			types.PUT("/:id", a.PropertyTypeHandler.UpdatePropertyType)
			types.DELETE("/:id", a.PropertyTypeHandler.DeletePropertyType)
			types.PATCH("/:id/activate", a.PropertyTypeHandler.ActivatePropertyType)
			types.PATCH("/:id/deactivate", a.PropertyTypeHandler.DeactivatePropertyType)
		}
	}
}
