package main

import (
	"os"

	"github.com/joho/godotenv"

	"placementhub/internal/pkg/logger"
	"placementhub/internal/server"
)

// @title PlacementHub API
// @version 1.0
// @description API for the campus placement office

// @contact.name API Support
// @contact.email support@placementhub.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// Load .env first so config env overrides pick it up.
	// Missing .env is fine; config falls back to defaults/YAML.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment and config file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
