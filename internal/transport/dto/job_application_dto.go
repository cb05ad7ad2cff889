package dto

import (
	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Surname   string    `json:"surname"`
	JobTitle  string    `json:"job_title"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
}

// SubmitApplicationResponse is returned for every apply attempt, successful or not.
type SubmitApplicationResponse struct {
	Outcome       string               `json:"outcome"`
	Message       string               `json:"message"`
	Field         string               `json:"field,omitempty"`
	ApplyDisabled bool                 `json:"apply_disabled"`
	Application   *ApplicationResponse `json:"application,omitempty"`
}

type ApplyStatusResponse struct {
	JobID         uuid.UUID `json:"job_id"`
	ApplyDisabled bool      `json:"apply_disabled"`
}

// ListMyApplicationsRequest defines parameters for listing the caller's applications.
type ListMyApplicationsRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"` // Set from user context
	Limit  int       `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type CancelApplicationRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context, scopes the delete
}
