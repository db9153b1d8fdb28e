// Package main is the entry point for the BookRec API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"bookrec/src/app/server"
	"bookrec/src/infra/config"
	"bookrec/src/infra/db"
	"bookrec/src/infra/logger"
	"bookrec/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	ctx := context.Background()
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
	}

	// Initialize repositories
	bookRepo := repo.NewBookRepository(pg, log)
	userRepo := repo.NewUserRepository(pg, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, bookRepo, userRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
