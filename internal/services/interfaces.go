package services

import (
	"context"

	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicationService runs the apply workflow and the applicant's tracking view.
type ApplicationService interface {
	// SubmitApplication never returns an error for a business outcome; those are
	// reported in Result. A nil session means the caller is not signed in.
	SubmitApplication(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (*Result, error)
	ApplyStatus(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (bool, error)
	CancelApplication(ctx context.Context, session *identity.Session, applicationID uuid.UUID) error
	ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	ListOpenJobs(ctx context.Context, req *dto.ListOpenJobsRequest) (*JobPage, error)
	GetOpenJob(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	ListJobsByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error)
}

// CompanyService defines the interface for the company directory.
type CompanyService interface {
	ListCompanies(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	UpdateCompany(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
	ListMyCompanies(ctx context.Context, userID uuid.UUID) ([]models.Company, error)
}

// ProfileService manages the caller's applicant profile.
type ProfileService interface {
	GetMyProfile(ctx context.Context, session *identity.Session) (*models.Profile, error)
	UpsertMyProfile(ctx context.Context, session *identity.Session, req *dto.UpsertProfileRequest) (*models.Profile, error)
}
