package dto

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// JobApplicationEmailRequest is the payload of the application-received relay.
type JobApplicationEmailRequest struct {
	Email       openapi_types.Email `json:"email" validate:"required"`
	FirstName   string              `json:"firstName" validate:"required,max=100"`
	Surname     string              `json:"surname" validate:"max=100"`
	JobTitle    string              `json:"jobTitle" validate:"required,max=200"`
	JobPosition string              `json:"jobPosition" validate:"max=200"`
	JobLink     string              `json:"jobLink" validate:"omitempty,url"`
}

// VerificationEmailRequest is the payload of the profile verification relay.
type VerificationEmailRequest struct {
	Email     openapi_types.Email `json:"email" validate:"required"`
	FirstName string              `json:"firstName" validate:"max=100"`
	Surname   string              `json:"surname" validate:"max=100"`
}

type RelayResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}
