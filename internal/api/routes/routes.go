package routes

import (
	"net/http"
	"strings"

	"remote-jobs-api/internal/api/handlers"
	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/api/openapi"
	"remote-jobs-api/internal/app"
	"remote-jobs-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIBasePath prefixes every versioned route.
const APIBasePath = "/api/v1"

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	apiV1 := router.Group(APIBasePath)

	// Create handlers
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	appHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	companyHandler := handlers.NewCompanyHandler(app.CompanyService, app.Validator)
	profileHandler := handlers.NewProfileHandler(app.ProfileService, app.Validator)
	relayHandler := handlers.NewRelayHandler(app.Mailer, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Verifier)
	optionalAuth := middleware.OptionalAuthMiddleware(app.Verifier)

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterJobApplicationRoutes(apiV1, appHandler, authMiddleware, optionalAuth, app.RateLimiter.Middleware())
	RegisterCompanyRoutes(apiV1, companyHandler, jobHandler, authMiddleware)
	RegisterProfileRoutes(apiV1, profileHandler, authMiddleware)
	RegisterRelayRoutes(apiV1, relayHandler,
		middleware.RelayKeyMiddleware(app.Config.Relay.APIKeyHash),
		openapi.RelayValidator(app.RelayDoc),
	)

	// --- Health & metrics ---
	router.GET("/health", handlers.HealthCheck)
	router.GET("/health/ready", handlers.ReadinessCheck(app.Ready))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.NoMethod(MethodNotAllowed)

	log.Debug().Msg("Routes: configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// MethodNotAllowed answers a known path hit with the wrong method. Relay
// callers get the relay's {success, message} body.
func MethodNotAllowed(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, APIBasePath+RelayPathPrefix+"/") {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
		return
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
