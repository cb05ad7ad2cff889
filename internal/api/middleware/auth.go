// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"remote-jobs-api/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	authorizationHeader = "Authorization"
	sessionCtx          = "session" // Key to store the verified session in context
)

// JWTAuthMiddleware rejects requests without a valid identity provider session token.
func JWTAuthMiddleware(verifier *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Auth middleware: rejecting request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		session, err := verifier.Verify(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("Auth middleware: token verification failed")
			if errors.Is(err, identity.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the session when a valid token is present and
// lets anonymous requests through. A bad token is treated as no token.
func OptionalAuthMiddleware(verifier *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(authorizationHeader) == "" {
			c.Next()
			return
		}
		tokenString, err := bearerToken(c)
		if err == nil {
			var session *identity.Session
			session, err = verifier.Verify(tokenString)
			if err == nil {
				setSession(c, session)
			}
		}
		if err != nil {
			log.Debug().Err(err).Msg("Auth middleware: ignoring unusable token on optional route")
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		return "", errors.New("Authorization header required")
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
		return "", errors.New("Invalid Authorization header format")
	}
	return headerParts[1], nil
}

func setSession(c *gin.Context, session *identity.Session) {
	c.Set(sessionCtx, session)
	c.Request = c.Request.WithContext(identity.WithSession(c.Request.Context(), session))
}

// GetSessionFromContext returns the verified session stored by the auth middleware.
func GetSessionFromContext(c *gin.Context) (*identity.Session, error) {
	sessionAny, exists := c.Get(sessionCtx)
	if !exists {
		return nil, errors.New("session not found in context")
	}

	session, ok := sessionAny.(*identity.Session)
	if !ok || session == nil {
		return nil, errors.New("session in context is of invalid type")
	}

	return session, nil
}

// OptionalSession returns the session, or nil for anonymous requests.
func OptionalSession(c *gin.Context) *identity.Session {
	session, err := GetSessionFromContext(c)
	if err != nil {
		return nil
	}
	return session
}
