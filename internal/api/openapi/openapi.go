// Package openapi holds the embedded relay contract and its request validator.
package openapi

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	ginmiddleware "github.com/oapi-codegen/gin-middleware"
	"github.com/rs/zerolog/log"
)

//go:embed relay.yaml
var relaySpec []byte

// LoadRelaySpec parses and validates the embedded relay document.
func LoadRelaySpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(relaySpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load relay openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid relay openapi document: %w", err)
	}
	// Match on path only, whatever host the API is served from.
	doc.Servers = nil
	return doc, nil
}

// RelayValidator rejects relay requests that do not match the document, using
// the relay's {success, message} error body.
func RelayValidator(doc *openapi3.T) gin.HandlerFunc {
	return ginmiddleware.OapiRequestValidatorWithOptions(doc, &ginmiddleware.Options{
		ErrorHandler: func(c *gin.Context, message string, statusCode int) {
			if statusCode == 0 {
				statusCode = http.StatusBadRequest
			}
			log.Debug().Str("path", c.Request.URL.Path).Str("reason", message).Msg("Relay: request rejected by schema")
			c.AbortWithStatusJSON(statusCode, gin.H{"success": false, "message": "Invalid request", "error": message})
		},
	})
}
