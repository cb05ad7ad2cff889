package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"remote-jobs-api/config"
	"remote-jobs-api/internal/app"
	"remote-jobs-api/internal/logging"
	"remote-jobs-api/internal/scheduler"
	"remote-jobs-api/internal/server"

	_ "remote-jobs-api/docs" // Swagger document served at /swagger

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title           Remote Jobs API
// @version         1.0
// @description     Job board and application workflow for remote positions.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider access token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Pretty)
	if !strings.EqualFold(cfg.Log.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	sched := scheduler.New()
	if err := application.Housekeeping(sched); err != nil {
		log.Fatal().Err(err).Msg("Failed to register housekeeping tasks")
	}
	sched.Start()

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown did not complete cleanly")
	}
	sched.Stop(shutdownCtx)

	log.Info().Msg("Application gracefully stopped.")
}
