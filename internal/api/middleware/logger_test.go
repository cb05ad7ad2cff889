package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"remote-jobs-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	r := gin.New()
	r.Use(middleware.Logger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, level := range map[string]string{"/ok": "info", "/missing": "warn", "/boom": "error"} {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, level, entry["level"], path)
		assert.Equal(t, path, entry["path"])
		assert.Equal(t, "HTTP: request handled", entry["message"])
	}
}
