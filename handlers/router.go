// router.go - Builds the Gin router and wires all API routes

package handlers

import (
	"net/http"

	"go-ecommerce-backend/config"
	"go-ecommerce-backend/middleware"
	"go-ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter constructs the services and registers every route. The
// database handle is injected here and flows down; nothing reaches it
// through package globals.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	secret := []byte(cfg.JWTSecret)

	authHandler := NewAuthHandler(services.NewUserService(db), secret)
	productHandler := NewProductHandler(db)
	orderHandler := NewOrderHandler(db, services.NewOrderService(db))

	r := gin.Default()

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "Server is running without issues",
			"environment": cfg.Env,
		})
	})

	// Public routes (no authentication required)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.List)
	api.GET("/products/search", productHandler.Search)
	api.GET("/products/:id", productHandler.Get)

	// Admin-only catalog writes
	adminProducts := api.Group("/products")
	adminProducts.Use(middleware.Auth(secret), middleware.RequireAdmin())
	{
		adminProducts.POST("", productHandler.Create)
		adminProducts.PUT("/:id", productHandler.Update)
		adminProducts.DELETE("/:id", productHandler.Delete)
	}

	// Authenticated order routes
	orders := api.Group("/orders")
	orders.Use(middleware.Auth(secret))
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.ListMine)
		orders.GET("/:id", orderHandler.Get)

		admin := orders.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/admin/all", orderHandler.ListAll)
			admin.PUT("/:id/status", orderHandler.UpdateStatus)
			admin.DELETE("/:id", orderHandler.Delete)
		}
	}

	return r
}
