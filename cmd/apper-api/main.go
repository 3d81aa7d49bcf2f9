package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nurpe/apper-api/internal/auth"
	"github.com/nurpe/apper-api/internal/config"
	"github.com/nurpe/apper-api/internal/db"
	"github.com/nurpe/apper-api/internal/excel"
	httphandler "github.com/nurpe/apper-api/internal/http"
	"github.com/nurpe/apper-api/internal/logger"
	"github.com/nurpe/apper-api/internal/metrics"
	"github.com/nurpe/apper-api/internal/pdf"
	"github.com/nurpe/apper-api/internal/repository"
	"github.com/nurpe/apper-api/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
	})

	database, err := db.New(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	customerService := service.NewCustomerService(
		repository.NewCustomerRepository(database),
		repository.NewAddressRepository(database),
		repository.NewContractRepository(database),
	)
	vehicleService := service.NewVehicleService(repository.NewVehicleRepository(database))
	applicationService := service.NewApplicationService(repository.NewApplicationRepository(database))
	calculationService := service.NewCalculationService(
		repository.NewCalculationRepository(database),
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg.Health.Markets,
	)

	m := metrics.New()
	handler := httphandler.NewHandler(httphandler.Services{
		Customers:    customerService,
		Vehicles:     vehicleService,
		Applications: applicationService,
		Calculations: calculationService,
	}, m, log)

	var tokenParser *auth.Parser
	if cfg.Auth.AccessSecret != "" {
		tokenParser = auth.NewParser(cfg.Auth.AccessSecret)
	} else {
		log.Warn().Msg("AUTH_ACCESS_SECRET not set, write routes are unauthenticated")
	}

	router := httphandler.NewRouter(handler, httphandler.RouterOptions{
		Production:     cfg.IsProduction(),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Auth:           tokenParser,
		Metrics:        m,
	}, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting apper api")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
