package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"remote-jobs-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func relayRouter(hash string) *gin.Engine {
	r := gin.New()
	r.POST("/relay", middleware.RelayKeyMiddleware(hash), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func postRelay(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/relay", nil)
	if key != "" {
		req.Header.Set(middleware.RelayKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRelayKeyMiddleware(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("relay-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	r := relayRouter(string(hash))

	assert.Equal(t, http.StatusOK, postRelay(r, "relay-secret").Code)

	for _, key := range []string{"", "wrong"} {
		w := postRelay(r, key)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid relay key"}`, w.Body.String())
	}
}

func TestRelayKeyMiddleware_NoHashConfigured(t *testing.T) {
	assert.Equal(t, http.StatusOK, postRelay(relayRouter(""), "").Code)
}
