package services

import (
	"context"
	"fmt"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// JobPage is one page of the open-job search.
type JobPage struct {
	Jobs    []models.Job
	Total   int
	HasMore bool
}

type jobService struct {
	jobRepo     storage.JobRepository
	companyRepo storage.CompanyRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(store *storage.Store) JobService {
	return &jobService{jobRepo: store.Jobs, companyRepo: store.Companies}
}

func (s *jobService) ListOpenJobs(ctx context.Context, req *dto.ListOpenJobsRequest) (*JobPage, error) {
	req.Limit, req.Offset = normalizePage(req.Limit, req.Offset, 10, 50)
	jobs, total, err := s.jobRepo.ListOpen(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing open jobs")
	}
	return &JobPage{
		Jobs:    jobs,
		Total:   total,
		HasMore: total > req.Offset+len(jobs),
	}, nil
}

func (s *jobService) GetOpenJob(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetOpenByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

// CreateJob posts a job for a company the caller owns.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if req.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	status := models.JobStatusOpen
	if req.Status != "" {
		parsed, err := models.ParseJobStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		status = parsed
	}
	if req.SalaryMax < req.SalaryMin {
		return nil, fmt.Errorf("%w: salary_max must not be below salary_min", ErrValidation)
	}

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching company %s", req.CompanyID))
	}
	if company.UserID != req.UserID {
		log.Warn().Str("company_id", company.ID.String()).Str("user_id", req.UserID.String()).Msg("CreateJob: caller does not own company")
		return nil, fmt.Errorf("%w: company belongs to another user", ErrForbidden)
	}

	job, err := s.jobRepo.Create(ctx, &models.Job{
		CompanyID:    req.CompanyID,
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Location:     req.Location,
		Type:         req.Type,
		RemoteLevel:  req.RemoteLevel,
		Requirements: req.Requirements,
		WhatWeOffer:  req.WhatWeOffer,
		Status:       status,
	})
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	log.Info().Str("job_id", job.ID.String()).Str("company_id", job.CompanyID.String()).Msg("Job created successfully")
	return job, nil
}

func (s *jobService) ListJobsByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching company %s", req.CompanyID))
	}
	jobs, err := s.jobRepo.ListByCompany(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs by company")
	}
	return jobs, nil
}
