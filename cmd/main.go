package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "newton_cooling/docs"
	"newton_cooling/internal/config"
	"newton_cooling/internal/handlers"
	"newton_cooling/internal/logger"
	"newton_cooling/internal/repository"
	"newton_cooling/internal/repository/db"
	"newton_cooling/internal/server"
	"newton_cooling/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Newton cooling estimator API
// @version                     1.0
// @description                 Estimates time of death from two body-temperature measurements.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(os.Getenv("COOLING_CONFIG_DIR"))
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	users, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := users.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(users)
	services := service.NewService(repos, service.Options{
		DefaultBodyTempC: cfg.Model.DefaultBodyTempC,
		SigningKey:       cfg.Auth.SigningKey,
		TokenTTL:         cfg.Auth.TokenTTL,
	}, log)
	apiHandler := handlers.NewHandler(services, log, handlers.WithDefaultCurveStep(cfg.Model.DefaultCurveStep))

	srv := server.New(server.DefaultConfig())
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// openDB opens the SQLite account store.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening account store", "path", cfg.DBPath)
	return db.InitDB(cfg.DBPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
