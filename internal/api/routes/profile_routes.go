package routes

import (
	"remote-jobs-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the signed-in applicant's profile routes.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	profileHandler handlers.ProfileHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	profile := rg.Group("/profile")
	profile.Use(authMiddleware)
	{
		profile.GET("", profileHandler.GetMyProfile)
		profile.PUT("", profileHandler.UpsertMyProfile)
	}
}
