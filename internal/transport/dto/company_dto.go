package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCompanyRequest defines the structure for registering a company.
type CreateCompanyRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Website     string    `json:"website" validate:"omitempty,url"`
	LogoURL     string    `json:"logo_url" validate:"omitempty,url"`
	Location    string    `json:"location" validate:"max=200"`
	UserID      uuid.UUID `json:"-"` // Set from user context
}

// UpdateCompanyRequest replaces the editable fields of a company the caller owns.
type UpdateCompanyRequest struct {
	ID          uuid.UUID `json:"-" validate:"required"` // From path
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Website     string    `json:"website" validate:"omitempty,url"`
	LogoURL     string    `json:"logo_url" validate:"omitempty,url"`
	Location    string    `json:"location" validate:"max=200"`
	UserID      uuid.UUID `json:"-"` // Set from user context
}

// ListCompaniesRequest defines pagination for the company directory.
type ListCompaniesRequest struct {
	Limit  int `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset int `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logo_url"`
	Location    string    `json:"location"`
	OpenJobs    int       `json:"open_jobs"`
	CreatedAt   time.Time `json:"created_at"`
}
