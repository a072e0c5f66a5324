package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printer_sync/internal/config"
	"printer_sync/internal/handlers"
	"printer_sync/internal/logger"
	"printer_sync/internal/repository"
	"printer_sync/internal/repository/db"
	"printer_sync/internal/server"
	"printer_sync/internal/service"
	"printer_sync/internal/state"
	"printer_sync/internal/transport"
)

const shutdownTimeout = 10 * time.Second

// @title        Printer Sync API
// @version      1.0
// @description  Read-only view of a 3D printer kept in sync with its OctoPrint-compatible backend.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleEncoding).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	if cfg.UsesDevSigningKey() {
		log.Warnw("auth_dev_signing_key", "hint", "set PRINTER_SYNC_AUTH_SIGNING_KEY")
	}

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	store := state.New()
	backend := transport.NewClient(transport.Options{
		BaseURL:    cfg.Backend.BaseURL,
		StatusPath: cfg.Backend.StatusPath,
		SensorPath: cfg.Backend.SensorPath,
		APIKey:     cfg.Backend.APIKey,
		Timeout:    cfg.Backend.Timeout,
	}, nil)
	services := service.NewService(repos, store, backend, service.Options{
		PollInterval: cfg.Poll.Interval,
		SigningKey:   cfg.SigningKey(),
		TokenTTL:     cfg.Auth.TokenTTL,
	}, log)
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Recorder.Run(ctx)
	services.Poller.Start(ctx)
	log.Infow("polling_started",
		"backend", cfg.Backend.BaseURL,
		"interval", cfg.Poll.Interval,
	)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("http_listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(cancel, services.Poller, srv, log)
}

// waitForShutdown blocks until SIGINT/SIGTERM, stops the poller and drains HTTP.
func waitForShutdown(cancel context.CancelFunc, poller service.Poller, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	select {
	case <-poller.Done():
	case <-ctx.Done():
		log.Warnw("poller_stop_timeout")
	}
}
