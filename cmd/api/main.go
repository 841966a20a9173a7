package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/AnhTuano/CNTTK23M/internal/pkg/logger"
	"github.com/AnhTuano/CNTTK23M/internal/server"
)

// @title ClassZone API
// @version 1.0
// @description API for the CNTT K23M class community hub

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine, config falls back to defaults
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment as is")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
