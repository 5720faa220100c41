package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-todo/internal/config"
	"github.com/yukikurage/project-todo/internal/handlers"
	"github.com/yukikurage/project-todo/internal/repository"
	"github.com/yukikurage/project-todo/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Open the state store
	repo, closeStore, err := repository.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open state store: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Failed to close state store: %v", err)
		}
	}()

	// Restore the saved workspace
	workspace := services.NewWorkspaceService(repo, cfg.StateKey)
	restored, err := workspace.Load()
	if err != nil {
		log.Fatalf("Failed to load workspace: %v", err)
	}
	if restored {
		log.Printf("Restored saved state from %s store", cfg.StoreBackend)
	} else {
		log.Println("Starting with an empty workspace")
	}

	// Initialize Gin router
	r := gin.Default()
	handlers.RegisterRoutes(r, workspace)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
