package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// RelayKeyHeader carries the shared key of relay callers.
const RelayKeyHeader = "X-Relay-Key"

// RelayKeyMiddleware compares the relay key header with a bcrypt hash. An empty
// hash leaves the relay open.
func RelayKeyMiddleware(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.Next()
			return
		}
		key := c.GetHeader(RelayKeyHeader)
		if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
			log.Warn().Str("client_ip", c.ClientIP()).Msg("Relay: rejected request with missing or invalid key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid relay key"})
			return
		}
		c.Next()
	}
}
