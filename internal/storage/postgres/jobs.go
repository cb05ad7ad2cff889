// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const jobColumns = `
	j.id, j.company_id, j.user_id, j.title, j.description, j.salary_min, j.salary_max,
	j.location, j.type, j.remote_level, j.requirements, j.what_we_offer, j.status, j.created_at,
	c.name, c.logo_url`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.CompanyID,
		&job.UserID,
		&job.Title,
		&job.Description,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.Location,
		&job.Type,
		&job.RemoteLevel,
		&job.Requirements,
		&job.WhatWeOffer,
		&job.Status,
		&job.CreatedAt,
		&job.CompanyName,
		&job.CompanyLogoURL,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepo) getOne(ctx context.Context, id uuid.UUID, onlyOpen bool) (*models.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`
	args := []interface{}{id}
	if onlyOpen {
		query += ` AND j.status = $2`
		args = append(args, models.JobStatusOpen)
	}

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("job_id", id.String()).Msg("JobRepo: error scanning job")
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return job, nil
}

// GetOpenByID retrieves a job by ID, filtered to status open.
func (r *JobRepo) GetOpenByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	return r.getOne(ctx, req.ID, true)
}

// GetByID retrieves a job by ID regardless of status.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	return r.getOne(ctx, req.ID, false)
}

// ListOpen returns one page of open jobs plus the total number of matches.
func (r *JobRepo) ListOpen(ctx context.Context, req *dto.ListOpenJobsRequest) ([]models.Job, int, error) {
	conditions := []string{"j.status = $1"}
	args := []interface{}{models.JobStatusOpen}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args)))
	}
	if req.Type != "" {
		args = append(args, req.Type)
		conditions = append(conditions, fmt.Sprintf("j.type = $%d", len(args)))
	}
	if req.RemoteLevel != "" {
		args = append(args, req.RemoteLevel)
		conditions = append(conditions, fmt.Sprintf("j.remote_level = $%d", len(args)))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM jobs j WHERE " + joinConditions(conditions)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error().Err(err).Msg("JobRepo: error counting open jobs")
		return nil, 0, fmt.Errorf("failed to count open jobs: %w", err)
	}

	baseQuery := `SELECT ` + jobColumns + ` FROM jobs j JOIN companies c ON c.id = j.company_id`
	query := buildListQuery(baseQuery, conditions, &args, req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("JobRepo: error querying open jobs")
		return nil, 0, fmt.Errorf("failed to query open jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan open jobs: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate open jobs: %w", err)
	}

	return jobs, total, nil
}

// ListByCompany retrieves every job of a company, newest first.
func (r *JobRepo) ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, req.CompanyID)
	if err != nil {
		log.Error().Err(err).Str("company_id", req.CompanyID.String()).Msg("JobRepo: error querying company jobs")
		return nil, fmt.Errorf("failed to query jobs by company: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan jobs by company: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.WhatWeOffer == nil {
		job.WhatWeOffer = []string{}
	}

	query := `
		INSERT INTO jobs (id, company_id, user_id, title, description, salary_min, salary_max,
			location, type, remote_level, requirements, what_we_offer, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		job.ID,
		job.CompanyID,
		job.UserID,
		job.Title,
		job.Description,
		job.SalaryMin,
		job.SalaryMax,
		job.Location,
		job.Type,
		job.RemoteLevel,
		job.Requirements,
		job.WhatWeOffer,
		job.Status,
	)
	if err != nil {
		err = mapWriteError(err)
		log.Error().Err(err).Str("company_id", job.CompanyID.String()).Msg("JobRepo: error creating job")
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Info().Str("job_id", job.ID.String()).Msg("Job created successfully")
	return r.getOne(ctx, job.ID, false)
}
