package main

import (
	"fmt"
	"log"
	"os"

	"github.com/salesops/sales-portal/internal/api"
	"github.com/salesops/sales-portal/internal/config"
	"github.com/salesops/sales-portal/internal/reporting"
	"github.com/salesops/sales-portal/internal/storage"
	"github.com/salesops/sales-portal/internal/storage/postgres"
	"github.com/salesops/sales-portal/internal/storage/sqlite"
)

// @title Sales Portal API
// @version 1.0
// @description Sales operations API: users, leads, tasks, projects, allocations and dashboard reporting.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize storage
	var store storage.Storage
	switch cfg.StorageType {
	case "postgres":
		store, err = postgres.NewPostgresStorage(cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL storage: %v", err)
		}
	default:
		store, err = sqlite.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite storage: %v", err)
		}
	}
	defer store.Close()

	// Initialize reporter
	reporter := reporting.NewReporter(store)

	// Initialize handler
	handler := api.NewHandler(store, reporter)

	// Setup routes
	router := api.SetupRoutes(handler, []string{cfg.ClientURL})

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	fmt.Printf("Starting API server on %s\n", addr)
	fmt.Printf("Storage type: %s\n", cfg.StorageType)

	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
