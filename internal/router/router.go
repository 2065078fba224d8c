package router

import (
	"rasoi/internal/auth"
	"rasoi/internal/bom"
	"rasoi/internal/inventory"
	"rasoi/internal/mapping"
	"rasoi/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth      *auth.Handler
	Mapping   *mapping.Handler
	Inventory *inventory.Handler
	BOM       *bom.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public auth routes
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
	}

	// Everything under a restaurant requires a valid token and a
	// merchant or admin role
	restaurants := r.Group("/restaurants/:id")
	restaurants.Use(middleware.AuthMiddleware())
	restaurants.Use(middleware.RequireRole(auth.RoleMerchant, auth.RoleAdmin))
	{
		restaurants.GET("/mappings", h.Mapping.List)
		restaurants.PUT("/mappings/:menuItemID", h.Mapping.Save)
		restaurants.GET("/mappings/:menuItemID", h.Mapping.Get)
		restaurants.DELETE("/mappings/:menuItemID", h.Mapping.Delete)

		restaurants.POST("/inventory", h.Inventory.Create)
		restaurants.GET("/inventory", h.Inventory.List)
		restaurants.GET("/inventory/:itemID", h.Inventory.Get)
		restaurants.PUT("/inventory/:itemID", h.Inventory.Update)
		restaurants.DELETE("/inventory/:itemID", h.Inventory.Delete)

		restaurants.POST("/usage", h.BOM.Usage)
		restaurants.GET("/capacity/:menuItemID", h.BOM.Capacity)
	}

	return r
}
