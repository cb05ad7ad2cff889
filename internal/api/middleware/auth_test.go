package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func issue(t *testing.T, secret string, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()
	token, err := identity.NewVerifier(secret, "", "").Issue(&identity.Session{UserID: userID, SessionID: "s-1"}, ttl)
	require.NoError(t, err)
	return token
}

// sessionEcho reports the session seen by the handler, both through the gin
// context and the request context.
func sessionEcho(c *gin.Context) {
	s := middleware.OptionalSession(c)
	fromCtx := identity.FromContext(c.Request.Context())
	body := gin.H{"user_id": "", "ctx_user_id": ""}
	if s != nil {
		body["user_id"] = s.UserID.String()
	}
	if fromCtx != nil {
		body["ctx_user_id"] = fromCtx.UserID.String()
	}
	c.JSON(http.StatusOK, body)
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestJWTAuthMiddleware(t *testing.T) {
	verifier := identity.NewVerifier(testSecret, "", "")
	r := gin.New()
	r.GET("/", middleware.JWTAuthMiddleware(verifier), sessionEcho)

	userID := uuid.New()

	tests := []struct {
		name      string
		header    string
		wantCode  int
		wantError string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid Authorization header format"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Invalid Authorization header format"},
		{"bad signature", "Bearer " + issue(t, "other-secret", userID, time.Hour), http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + issue(t, testSecret, userID, -time.Minute), http.StatusUnauthorized, "Token has expired"},
		{"valid", "Bearer " + issue(t, testSecret, userID, time.Hour), http.StatusOK, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, tc.header)
			assert.Equal(t, tc.wantCode, w.Code)
			got := body(t, w)
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, got["error"])
				return
			}
			assert.Equal(t, userID.String(), got["user_id"])
			assert.Equal(t, userID.String(), got["ctx_user_id"])
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	verifier := identity.NewVerifier(testSecret, "", "")
	r := gin.New()
	r.GET("/", middleware.OptionalAuthMiddleware(verifier), sessionEcho)

	userID := uuid.New()

	w := serve(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body(t, w)["user_id"])

	// An unusable token downgrades the request to anonymous.
	w = serve(r, "Bearer "+issue(t, "other-secret", userID, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body(t, w)["user_id"])

	w = serve(r, "Bearer "+issue(t, testSecret, userID, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), body(t, w)["user_id"])
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	session, err := middleware.GetSessionFromContext(c)
	assert.Nil(t, session)
	assert.Error(t, err)

	c.Set("session", "not a session")
	_, err = middleware.GetSessionFromContext(c)
	assert.Error(t, err)
}
