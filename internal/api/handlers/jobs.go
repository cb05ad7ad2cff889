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

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListOpenJobs godoc
//
//	@Summary		List open jobs
//	@Description	Searches open job postings, newest first, with range pagination.
//	@Tags			jobs
//	@Produce		json
//	@Param			q				query		string				false	"Search in title and description"
//	@Param			type			query		string				false	"Employment type"
//	@Param			remote_level	query		string				false	"Remote level"
//	@Param			limit			query		int					false	"Page size"	default(10)
//	@Param			offset			query		int					false	"Offset"	default(0)
//	@Success		200				{object}	dto.JobListResponse	"One page of open jobs"
//	@Failure		400				{object}	map[string]string	"Bad Request - Invalid query parameters"
//	@Failure		500				{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs [get]
func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	var req dto.ListOpenJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	page, err := h.service.ListOpenJobs(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("ListOpenJobs: error listing open jobs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:    MapJobsToResponses(page.Jobs),
		Total:   page.Total,
		HasMore: page.HasMore,
	})
}

// GetJobByID godoc
//
//	@Summary		Get an open job by ID
//	@Description	Retrieves a job posting with its company. Closed and draft jobs are not found.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobResponse		"Successfully retrieved job"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Job Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetOpenJob(c.Request.Context(), &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Error().Err(err).Str("job_id", jobID.String()).Msg("GetJobByID: error fetching job")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// CreateJob godoc
//
//	@Summary		Post a job
//	@Description	Creates a job for a company owned by the caller. Status defaults to open.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job details"
//	@Success		201	{object}	dto.JobResponse			"Job created successfully"
//	@Failure		400	{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		403	{object}	map[string]string		"Forbidden - Company belongs to another user"
//	@Failure		404	{object}	map[string]string		"Company Not Found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = session.UserID

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: you do not own this company"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		default:
			log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("CreateJob: error creating job")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// ListJobsByCompany godoc
//
//	@Summary		List a company's jobs
//	@Description	Retrieves every job of a company regardless of status.
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string				true	"Company ID"	Format(uuid)
//	@Success		200	{array}		dto.JobResponse		"Jobs of the company"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Company Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/companies/{id}/jobs [get]
func (h *JobHandler) ListJobsByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	jobs, err := h.service.ListJobsByCompany(c.Request.Context(), &dto.ListJobsByCompanyRequest{CompanyID: companyID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else {
			log.Error().Err(err).Str("company_id", companyID.String()).Msg("ListJobsByCompany: error listing jobs")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve company jobs"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobsToResponses(jobs))
}
