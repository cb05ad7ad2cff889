package routes

import (
	"remote-jobs-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers the job board routes. Browsing is public,
// posting requires a session.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListOpenJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.POST("", authMiddleware, jobHandler.CreateJob)
	}
}
