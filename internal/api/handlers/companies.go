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

// CompanyHandler holds dependencies for the company directory.
type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{
		service:   service,
		validator: validate,
	}
}

// ListCompanies godoc
//
//	@Summary		List companies
//	@Description	Company directory with the number of open jobs per company.
//	@Tags			companies
//	@Produce		json
//	@Param			limit	query		int						false	"Page size"	default(20)
//	@Param			offset	query		int						false	"Offset"	default(0)
//	@Success		200		{array}		dto.CompanyResponse		"Companies"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid query parameters"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var req dto.ListCompaniesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	companies, err := h.service.ListCompanies(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("ListCompanies: error listing companies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve companies"})
		return
	}
	c.JSON(http.StatusOK, MapCompaniesToResponses(companies))
}

// GetCompany godoc
//
//	@Summary		Get a company
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string				true	"Company ID"	Format(uuid)
//	@Success		200	{object}	dto.CompanyResponse	"Company"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Company Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	company, err := h.service.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else {
			log.Error().Err(err).Str("company_id", companyID.String()).Msg("GetCompany: error fetching company")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve company"})
		}
		return
	}
	c.JSON(http.StatusOK, MapCompanyModelToResponse(company))
}

// CreateCompany godoc
//
//	@Summary		Register a company
//	@Description	Creates a company owned by the caller.
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			company	body		dto.CreateCompanyRequest	true	"Company details"
//	@Success		201		{object}	dto.CompanyResponse			"Company created"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/companies [post]
//	@Security		BearerAuth
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = session.UserID

	company, err := h.service.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("CreateCompany: error creating company")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company"})
		}
		return
	}
	c.JSON(http.StatusCreated, MapCompanyModelToResponse(company))
}

// UpdateCompany godoc
//
//	@Summary		Update a company
//	@Description	Replaces the editable fields of a company the caller owns. Companies of other users are not found.
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Company ID"	Format(uuid)
//	@Param			company	body		dto.UpdateCompanyRequest	true	"Company details"
//	@Success		200		{object}	dto.CompanyResponse			"Company updated"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		404		{object}	map[string]string			"Company Not Found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/companies/{id} [put]
//	@Security		BearerAuth
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = companyID
	req.UserID = session.UserID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.UpdateCompany(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		default:
			log.Error().Err(err).Str("company_id", companyID.String()).Msg("UpdateCompany: error updating company")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company"})
		}
		return
	}
	c.JSON(http.StatusOK, MapCompanyModelToResponse(company))
}

// ListMyCompanies godoc
//
//	@Summary		List my companies
//	@Tags			companies
//	@Produce		json
//	@Success		200	{array}		dto.CompanyResponse	"Companies owned by the caller"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/companies/my [get]
//	@Security		BearerAuth
func (h *CompanyHandler) ListMyCompanies(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	companies, err := h.service.ListMyCompanies(c.Request.Context(), session.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("ListMyCompanies: error listing companies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve companies"})
		return
	}
	c.JSON(http.StatusOK, MapCompaniesToResponses(companies))
}
