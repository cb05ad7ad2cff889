package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/api/routes"
	"remote-jobs-api/internal/app"
	"remote-jobs-api/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router *gin.Engine
	app    *app.Application // Store the application container
	http   *http.Server
}

func NewServer(app *app.Application) *Server {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.Logger(), gin.Recovery(), metrics.Middleware())

	// --- Configure and Apply CORS Middleware ---
	log.Info().Strs("origins", app.Config.CORS.AllowedOrigins).Msg("Server: configuring CORS")
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))

	_ = router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	routes.RegisterRoutes(router, app)

	cfg := app.Config.Server
	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RelayKeyHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, // How long the result of a preflight request can be cached
	}
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.http.Addr).Msg("Server: starting")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Server: shutting down")
	return s.http.Shutdown(ctx)
}
