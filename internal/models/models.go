package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// ParseJobStatus normalizes a status string. Older rows and clients send "Open".
func ParseJobStatus(s string) (JobStatus, error) {
	v := JobStatus(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case JobStatusOpen, JobStatusClosed, JobStatusDraft:
		return v, nil
	default:
		return "", fmt.Errorf("invalid JobStatus value: %s", s)
	}
}

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v, err := ParseJobStatus(strVal)
	if err != nil {
		return err
	}
	*js = v
	return nil
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strings.ToLower(strVal))
	switch v {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// Company is an employer listed in the directory.
type Company struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"` // owner
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Website     string    `json:"website" db:"website"`
	LogoURL     string    `json:"logo_url" db:"logo_url"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Populated by directory listings only.
	OpenJobs int `json:"open_jobs" db:"-"`
}

// Job is a posting owned by a company.
type Job struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CompanyID    uuid.UUID `json:"company_id" db:"company_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"` // poster
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	SalaryMin    int       `json:"salary_min" db:"salary_min"`
	SalaryMax    int       `json:"salary_max" db:"salary_max"`
	Location     string    `json:"location" db:"location"`
	Type         string    `json:"type" db:"type"`
	RemoteLevel  string    `json:"remote_level" db:"remote_level"`
	Requirements []string  `json:"requirements" db:"requirements"`
	WhatWeOffer  []string  `json:"what_we_offer" db:"what_we_offer"`
	Status       JobStatus `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Joined from companies on reads.
	CompanyName    string `json:"company_name" db:"company_name"`
	CompanyLogoURL string `json:"company_logo_url" db:"company_logo_url"`
}

// Profile is the applicant profile. ID equals the identity provider user id.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	Surname   string    `json:"surname" db:"surname"`
	Gender    string    `json:"gender" db:"gender"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Country   string    `json:"country" db:"country"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Application is a submitted job application. Names and job title are a
// snapshot taken at submission time, not a live join.
type Application struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	JobID     uuid.UUID         `json:"job_id" db:"job_id"`
	UserID    uuid.UUID         `json:"user_id" db:"user_id"`
	Email     string            `json:"email" db:"email"`
	FirstName string            `json:"first_name" db:"first_name"`
	Surname   string            `json:"surname" db:"surname"`
	Gender    string            `json:"gender" db:"gender"`
	JobTitle  string            `json:"job_title" db:"job_title"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
