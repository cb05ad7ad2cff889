package handlers

import (
	"errors"
	"net/http"

	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

var outcomeStatus = map[services.Outcome]int{
	services.OutcomeSuccess:           http.StatusCreated,
	services.OutcomeNotAuthenticated:  http.StatusUnauthorized,
	services.OutcomeProfileIncomplete: http.StatusUnprocessableEntity,
	services.OutcomeJobUnavailable:    http.StatusGone,
	services.OutcomeAlreadyApplied:    http.StatusConflict,
	services.OutcomeSubmissionFailed:  http.StatusBadGateway,
}

// ApplyToJob godoc
//
//	@Summary		Apply for a job
//	@Description	Runs the eligibility checks and records the application. Anonymous callers get a not_authenticated outcome.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string							true	"Job ID to apply for"	Format(uuid)
//	@Success		201	{object}	dto.SubmitApplicationResponse	"Application submitted"
//	@Failure		400	{object}	map[string]string				"Invalid Job ID"
//	@Failure		401	{object}	dto.SubmitApplicationResponse	"Not signed in"
//	@Failure		409	{object}	dto.SubmitApplicationResponse	"Already applied"
//	@Failure		410	{object}	dto.SubmitApplicationResponse	"Job no longer open"
//	@Failure		422	{object}	dto.SubmitApplicationResponse	"Profile incomplete"
//	@Failure		429	{object}	map[string]string				"Too many requests"
//	@Failure		502	{object}	dto.SubmitApplicationResponse	"Store rejected the application"
//	@Failure		500	{object}	map[string]string				"Internal Server Error"
//	@Router			/jobs/{id}/apply [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}
	session := middleware.OptionalSession(c)

	res, err := h.service.SubmitApplication(c.Request.Context(), session, "", jobID)
	if err != nil {
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("ApplyToJob: error submitting application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	status, ok := outcomeStatus[res.Outcome]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, MapResultToResponse(res))
}

// ApplyStatus godoc
//
//	@Summary		Apply button state
//	@Description	Reports whether applying to the job is disabled for the caller's session.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string					true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplyStatusResponse	"Apply state"
//	@Failure		400	{object}	map[string]string		"Invalid Job ID"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{id}/apply-status [get]
func (h *ApplicationHandler) ApplyStatus(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	disabled, err := h.service.ApplyStatus(c.Request.Context(), middleware.OptionalSession(c), "", jobID)
	if err != nil {
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("ApplyStatus: error checking apply state")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check application state"})
		return
	}

	c.JSON(http.StatusOK, dto.ApplyStatusResponse{JobID: jobID, ApplyDisabled: disabled})
}

// CancelApplication godoc
//
//	@Summary		Withdraw an application
//	@Description	Deletes one of the caller's applications and re-enables applying to that job.
//	@Tags			job_applications
//	@Param			id	path	string	true	"Application ID"	Format(uuid)
//	@Success		204	"Application withdrawn"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Application Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id} [delete]
//	@Security		BearerAuth
func (h *ApplicationHandler) CancelApplication(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	if err := h.service.CancelApplication(c.Request.Context(), session, appID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case errors.Is(err, services.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		default:
			log.Error().Err(err).Str("application_id", appID.String()).Msg("CancelApplication: error deleting application")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel application"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMyApplications godoc
//
//	@Summary		List my applications
//	@Description	Retrieves the caller's applications, newest first.
//	@Tags			job_applications
//	@Produce		json
//	@Param			limit	query		int						false	"Page size"	default(20)
//	@Param			offset	query		int						false	"Offset"	default(0)
//	@Success		200		{array}		dto.ApplicationResponse	"Applications"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid query parameters"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/my [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListMyApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.UserID = session.UserID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	apps, err := h.service.ListMyApplications(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("ListMyApplications: error listing applications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, MapApplicationModelToResponse(&apps[i]))
	}
	c.JSON(http.StatusOK, responses)
}
