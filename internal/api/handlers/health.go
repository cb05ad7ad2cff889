package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger is implemented by the dependencies the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthCheck handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Check if the service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ReadinessCheck returns a handler that pings every named dependency.
//
//	@Summary		Readiness check
//	@Description	Check that the record store and the apply gate store are reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"All dependencies reachable"
//	@Failure		503	{object}	map[string]string	"A dependency is unreachable"
//	@Router			/health/ready [get]
func ReadinessCheck(deps map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := gin.H{"status": "ok"}
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				log.Warn().Err(err).Str("dependency", name).Msg("ReadinessCheck: dependency unreachable")
				status = http.StatusServiceUnavailable
				body["status"] = "unavailable"
				body[name] = err.Error()
				continue
			}
			body[name] = "ok"
		}
		c.JSON(status, body)
	}
}
