package services

import "remote-jobs-api/internal/models"

// Outcome is the result kind of an apply attempt.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeNotAuthenticated  Outcome = "not_authenticated"
	OutcomeProfileIncomplete Outcome = "profile_incomplete"
	OutcomeJobUnavailable    Outcome = "job_unavailable"
	OutcomeAlreadyApplied    Outcome = "already_applied"
	OutcomeSubmissionFailed  Outcome = "submission_failed"
)

const (
	FieldFirstName = "first_name"
	FieldSurname   = "surname"
)

const (
	msgSuccess            = "Application submitted successfully!"
	msgJobUnavailable     = "This job posting no longer exists or is not open for applications"
	msgJobRemoved         = "Unable to submit application: the job posting may have been removed"
	msgNotAuthenticated   = "Please login to apply for this position"
	msgProfileMissing     = "Please complete your profile before applying"
	msgFirstNameMissing   = "Please add your first name to your profile before applying"
	msgSurnameMissing     = "Please add your surname to your profile before applying"
	msgAlreadyApplied     = "You've already applied to this position"
	msgSubmissionFailedPf = "Application failed: "
)

// Result describes one apply attempt.
type Result struct {
	Outcome       Outcome
	Field         string // missing profile field, OutcomeProfileIncomplete only
	Message       string
	Detail        string // store error text, OutcomeSubmissionFailed only
	Application   *models.Application
	ApplyDisabled bool
}
