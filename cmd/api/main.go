package main

import (
	"os"

	"github.com/koprumezun/mezunhub/internal/pkg/logger"
	"github.com/koprumezun/mezunhub/internal/server"
)

// @title KöprüMezun Demo API
// @version 1.0
// @description State-simulation backend for the KöprüMezun alumni network demo

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
