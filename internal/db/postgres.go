package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (merchant accounts)
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'merchant',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// INVENTORY ITEMS (stock snapshot)
	// -------------------------------
	// stock is allowed to go negative: negative means untracked by
	// convention and is stored as-is.
	inventorySQL := `
		CREATE TABLE IF NOT EXISTS inventory_items (
			id UUID PRIMARY KEY,
			restaurant_id VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			primary_unit VARCHAR(50) NOT NULL,
			stock DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, inventorySQL); err != nil {
		return err
	}

	inventoryIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_inventory_restaurant
		ON inventory_items (restaurant_id)
	`
	if _, err := pool.Exec(ctx, inventoryIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// ITEM MAPPINGS (BOM per menu item)
	// -------------------------------
	mappingsSQL := `
		CREATE TABLE IF NOT EXISTS item_mappings (
			id UUID PRIMARY KEY,
			restaurant_id VARCHAR(255) NOT NULL,
			menu_item_id VARCHAR(255) NOT NULL,
			components JSONB NOT NULL DEFAULT '[]',
			steps JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, menu_item_id)
		)
	`
	if _, err := pool.Exec(ctx, mappingsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized")
	return nil
}
