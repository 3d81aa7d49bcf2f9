// Command migrate brings the database schema up to date and exits.
package main

import (
	"fmt"
	"os"

	"github.com/nurpe/apper-api/internal/config"
	"github.com/nurpe/apper-api/internal/db"
	"github.com/nurpe/apper-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Environment: cfg.Environment, Level: cfg.Log.Level})

	// db.New runs the migrations as part of opening the connection.
	database, err := db.New(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := db.Close(database); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
	log.Info().Msg("migrations applied")
}
