package handlers

import (
	"net/http"

	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ProfileHandler serves the caller's applicant profile.
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
}

func NewProfileHandler(service services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		validator: validate,
	}
}

// GetMyProfile godoc
//
//	@Summary		Get my profile
//	@Description	Returns the caller's profile. A caller without a stored profile gets an empty one.
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponse	"Profile"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/profile [get]
//	@Security		BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.service.GetMyProfile(c.Request.Context(), session)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("GetMyProfile: error fetching profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}

// UpsertMyProfile godoc
//
//	@Summary		Save my profile
//	@Description	Creates or replaces the caller's profile.
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		dto.UpsertProfileRequest	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileResponse			"Profile saved"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/profile [put]
//	@Security		BearerAuth
func (h *ProfileHandler) UpsertMyProfile(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	profile, err := h.service.UpsertMyProfile(c.Request.Context(), session, &req)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("UpsertMyProfile: error saving profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}
