package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertProfileRequest carries the editable profile fields.
type UpsertProfileRequest struct {
	FirstName string `json:"first_name" validate:"max=100"`
	Surname   string `json:"surname" validate:"max=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Country   string `json:"country" validate:"max=100"`
}

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	Surname   string    `json:"surname"`
	Gender    string    `json:"gender,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	Complete  bool      `json:"complete"`
	UpdatedAt time.Time `json:"updated_at"`
}
