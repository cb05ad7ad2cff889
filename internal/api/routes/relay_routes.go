package routes

import (
	"remote-jobs-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RelayPathPrefix is the path of the notification relay group under the API base.
const RelayPathPrefix = "/relay"

// RegisterRelayRoutes registers the notification relay endpoints. Guards run in
// order: relay key first, then schema validation.
func RegisterRelayRoutes(
	rg *gin.RouterGroup,
	relayHandler handlers.RelayHandlerInterface,
	guards ...gin.HandlerFunc,
) {
	relay := rg.Group(RelayPathPrefix)
	relay.Use(guards...)
	{
		relay.POST("/job-application-email", relayHandler.SendJobApplicationEmail)
		relay.POST("/verification-email", relayHandler.SendVerificationEmail)
	}
}
