// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for posting a new job.
type CreateJobRequest struct {
	CompanyID    uuid.UUID `json:"company_id" validate:"required"`
	Title        string    `json:"title" validate:"required,min=2,max=200"`
	Description  string    `json:"description" validate:"max=20000"`
	SalaryMin    int       `json:"salary_min" validate:"gte=0"`
	SalaryMax    int       `json:"salary_max" validate:"gte=0,gtefield=SalaryMin"`
	Location     string    `json:"location" validate:"max=200"`
	Type         string    `json:"type" validate:"max=50"`
	RemoteLevel  string    `json:"remote_level" validate:"max=50"`
	Requirements []string  `json:"requirements" validate:"dive,max=500"`
	WhatWeOffer  []string  `json:"what_we_offer" validate:"dive,max=500"`
	Status       string    `json:"status" validate:"omitempty,job_status"` // defaults to open
	UserID       uuid.UUID `json:"-"`                                      // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListOpenJobsRequest defines parameters for the public job search.
type ListOpenJobsRequest struct {
	Search      string `form:"q" validate:"max=100"`
	Type        string `form:"type" validate:"max=50"`
	RemoteLevel string `form:"remote_level" validate:"max=50"`
	Limit       int    `form:"limit,default=10" validate:"omitempty,gte=0,lte=50"`
	Offset      int    `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListJobsByCompanyRequest defines parameters for listing a company's jobs.
type ListJobsByCompanyRequest struct {
	CompanyID uuid.UUID `json:"-" validate:"required"`
}

// --- Job Response DTOs ---

// JobResponse defines the structure for returning job details.
type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SalaryMin      int       `json:"salary_min"`
	SalaryMax      int       `json:"salary_max"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	RemoteLevel    string    `json:"remote_level"`
	Requirements   []string  `json:"requirements"`
	WhatWeOffer    []string  `json:"what_we_offer"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	CompanyName    string    `json:"company_name,omitempty"`
	CompanyLogoURL string    `json:"company_logo_url,omitempty"`
}

// JobListResponse is one page of the job search.
type JobListResponse struct {
	Jobs    []JobResponse `json:"jobs"`
	Total   int           `json:"total"`
	HasMore bool          `json:"has_more"`
}
