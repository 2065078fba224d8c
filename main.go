package main

import (
	"log"
	"os"

	"rasoi/internal/auth"
	"rasoi/internal/bom"
	"rasoi/internal/db"
	"rasoi/internal/inventory"
	"rasoi/internal/logger"
	"rasoi/internal/mapping"
	"rasoi/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Validate JWT_SECRET early (fail fast)
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer appLog.Sync()

	// Database connection
	pool := db.ConnectPostgres()
	defer pool.Close()

	// Auth dependencies
	userRepo := auth.NewPostgresUserRepository(pool)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	// BOM MAPPINGS
	mappingRepo := mapping.NewPostgresRepository(pool)
	mappingService := mapping.NewService(mappingRepo)
	mappingHandler := mapping.NewHandler(mappingService)

	// INVENTORY
	inventoryRepo := inventory.NewPostgresRepository(pool)
	inventoryService := inventory.NewService(inventoryRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	// EXPLOSION ENGINE (usage + capacity)
	engine := bom.NewEngine(mappingRepo, inventoryRepo, appLog.With("component", "bom"))
	bomHandler := bom.NewHandler(engine)

	r := router.New(router.Handlers{
		Auth:      authHandler,
		Mapping:   mappingHandler,
		Inventory: inventoryHandler,
		BOM:       bomHandler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	appLog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
