package routes

import (
	"remote-jobs-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers the apply workflow and the applicant's
// application tracking routes.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
	applyLimiter gin.HandlerFunc, // must run after optionalAuth
) {
	// Anonymous callers reach the workflow and get a not_authenticated outcome.
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(optionalAuth)
	{
		jobsGroup.POST("/:id/apply", applyLimiter, appHandler.ApplyToJob)
		jobsGroup.GET("/:id/apply-status", appHandler.ApplyStatus)
	}

	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.GET("/my", appHandler.ListMyApplications)
		appsGroup.DELETE("/:id", appHandler.CancelApplication)
	}
}
