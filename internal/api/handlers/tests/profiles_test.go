package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"remote-jobs-api/internal/api/handlers"
	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProfileRouter() (*gin.Engine, *MockProfileService) {
	router := newRouter()
	svc := new(MockProfileService)
	h := handlers.NewProfileHandler(svc, handlers.NewValidator())
	auth := middleware.JWTAuthMiddleware(newVerifier())
	router.GET("/profile", auth, h.GetMyProfile)
	router.PUT("/profile", auth, h.UpsertMyProfile)
	return router, svc
}

func TestGetMyProfile_Incomplete(t *testing.T) {
	router, svc := setupProfileRouter()
	session := newSession()
	svc.On("GetMyProfile", mock.Anything, sessionFor(session)).
		Return(&models.Profile{ID: session.UserID, FirstName: "Ada", Email: session.Email}, nil).Once()

	w := doRequest(t, router, http.MethodGet, "/profile", nil, bearer(t, session))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, "Ada", resp.FirstName)
	assert.False(t, resp.Complete)
}

func TestUpsertMyProfile(t *testing.T) {
	router, svc := setupProfileRouter()
	session := newSession()
	req := &dto.UpsertProfileRequest{FirstName: "Ada", Surname: "Lovelace", Phone: "+447700900123"}
	svc.On("UpsertMyProfile", mock.Anything, sessionFor(session), req).
		Return(&models.Profile{ID: session.UserID, FirstName: "Ada", Surname: "Lovelace"}, nil).Once()

	w := doRequest(t, router, http.MethodPut, "/profile", req, bearer(t, session))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.ProfileResponse](t, w).Complete)
	svc.AssertExpectations(t)
}

func TestUpsertMyProfile_InvalidGender(t *testing.T) {
	router, svc := setupProfileRouter()

	w := doRequest(t, router, http.MethodPut, "/profile", map[string]any{"first_name": "Ada", "gender": "robot"}, bearer(t, newSession()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpsertMyProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpsertMyProfile_StoreFailure(t *testing.T) {
	router, svc := setupProfileRouter()
	svc.On("UpsertMyProfile", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	w := doRequest(t, router, http.MethodPut, "/profile", map[string]any{"first_name": "Ada"}, bearer(t, newSession()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
