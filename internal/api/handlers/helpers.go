package handlers

import (
	"errors"
	"fmt"
	"time"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the API's custom tags registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("job_status", func(fl validator.FieldLevel) bool {
		_, err := models.ParseJobStatus(fl.Field().String())
		return err == nil
	})
	return validate
}

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "url":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		case "job_status":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of open, closed, draft", fieldName)
		case "gtefield":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must not be less than %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	whatWeOffer := job.WhatWeOffer
	if whatWeOffer == nil {
		whatWeOffer = []string{}
	}
	return dto.JobResponse{
		ID:             job.ID,
		CompanyID:      job.CompanyID,
		Title:          job.Title,
		Description:    job.Description,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Location:       job.Location,
		Type:           job.Type,
		RemoteLevel:    job.RemoteLevel,
		Requirements:   requirements,
		WhatWeOffer:    whatWeOffer,
		Status:         string(job.Status),
		CreatedAt:      job.CreatedAt,
		CompanyName:    job.CompanyName,
		CompanyLogoURL: job.CompanyLogoURL,
	}
}

func MapJobsToResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, MapJobModelToJobResponse(&jobs[i]))
	}
	return responses
}

func MapCompanyModelToResponse(company *models.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		Website:     company.Website,
		LogoURL:     company.LogoURL,
		Location:    company.Location,
		OpenJobs:    company.OpenJobs,
		CreatedAt:   company.CreatedAt,
	}
}

func MapCompaniesToResponses(companies []models.Company) []dto.CompanyResponse {
	responses := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, MapCompanyModelToResponse(&companies[i]))
	}
	return responses
}

func MapProfileModelToResponse(profile *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		Surname:   profile.Surname,
		Gender:    profile.Gender,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Country:   profile.Country,
		Complete:  services.IsProfileComplete(profile),
		UpdatedAt: profile.UpdatedAt,
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		UserID:    app.UserID,
		Email:     app.Email,
		FirstName: app.FirstName,
		Surname:   app.Surname,
		JobTitle:  app.JobTitle,
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt.Format(time.RFC3339),
	}
}

// MapResultToResponse renders an apply attempt.
func MapResultToResponse(res *services.Result) dto.SubmitApplicationResponse {
	resp := dto.SubmitApplicationResponse{
		Outcome:       string(res.Outcome),
		Message:       res.Message,
		Field:         res.Field,
		ApplyDisabled: res.ApplyDisabled,
	}
	if res.Application != nil {
		app := MapApplicationModelToResponse(res.Application)
		resp.Application = &app
	}
	return resp
}
