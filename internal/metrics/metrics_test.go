package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCounters(t *testing.T) {
	before := testutil.ToFloat64(submissions.WithLabelValues("already_applied"))
	ObserveSubmission("already_applied")
	assert.Equal(t, before+1, testutil.ToFloat64(submissions.WithLabelValues("already_applied")))

	beforeErr := testutil.ToFloat64(notifications.WithLabelValues("application", "error"))
	ObserveNotification("application", errors.New("relay down"))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(notifications.WithLabelValues("application", "error")))

	beforeOK := testutil.ToFloat64(relayMessages.WithLabelValues("verification_request", "ok"))
	ObserveRelayMessage("verification_request", nil)
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(relayMessages.WithLabelValues("verification_request", "ok")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/jobs/:id", "204"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/123", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/jobs/:id", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "remote_jobs_http_requests_total"))
}
