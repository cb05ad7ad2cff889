package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const jobColumns = `
	j.id, j.company_id, j.user_id, j.title, j.description, j.salary_min, j.salary_max,
	j.location, j.type, j.remote_level, j.requirements, j.what_we_offer, j.status, j.created_at,
	c.name, c.logo_url`

// JobRepo implements storage.JobRepository on sqlite.
type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row scanner) (*models.Job, error) {
	var (
		job                       models.Job
		requirements, whatWeOffer string
		createdAt                 string
	)
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.UserID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.Type, &job.RemoteLevel, &requirements, &whatWeOffer, &job.Status, &createdAt,
		&job.CompanyName, &job.CompanyLogoURL,
	)
	if err != nil {
		return nil, err
	}
	if job.Requirements, err = decodeList(requirements); err != nil {
		return nil, err
	}
	if job.WhatWeOffer, err = decodeList(whatWeOffer); err != nil {
		return nil, err
	}
	if job.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepo) getOne(ctx context.Context, id uuid.UUID, onlyOpen bool) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j JOIN companies c ON c.id = j.company_id WHERE j.id = ?`
	args := []interface{}{id}
	if onlyOpen {
		query += ` AND j.status = ?`
		args = append(args, models.JobStatusOpen)
	}
	job, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if notFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return job, nil
}

func (r *JobRepo) GetOpenByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	return r.getOne(ctx, req.ID, true)
}

func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	return r.getOne(ctx, req.ID, false)
}

func (r *JobRepo) ListOpen(ctx context.Context, req *dto.ListOpenJobsRequest) ([]models.Job, int, error) {
	conditions := []string{"j.status = ?"}
	args := []interface{}{models.JobStatusOpen}
	if req.Search != "" {
		like := "%" + req.Search + "%"
		conditions = append(conditions, "(j.title LIKE ? OR j.description LIKE ?)")
		args = append(args, like, like)
	}
	if req.Type != "" {
		conditions = append(conditions, "j.type = ?")
		args = append(args, req.Type)
	}
	if req.RemoteLevel != "" {
		conditions = append(conditions, "j.remote_level = ?")
		args = append(args, req.RemoteLevel)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs j WHERE "+joinConditions(conditions), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count open jobs: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE ` + joinConditions(conditions) + ` ORDER BY j.created_at DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, req.Limit, req.Offset)...)
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
	return jobs, total, rows.Err()
}

func (r *JobRepo) ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = ? ORDER BY j.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, req.CompanyID)
	if err != nil {
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

func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	requirements, err := encodeList(job.Requirements)
	if err != nil {
		return nil, err
	}
	whatWeOffer, err := encodeList(job.WhatWeOffer)
	if err != nil {
		return nil, err
	}
	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO jobs (id, company_id, user_id, title, description, salary_min, salary_max,
			location, type, remote_level, requirements, what_we_offer, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.CompanyID, job.UserID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.Location, job.Type, job.RemoteLevel, requirements, whatWeOffer, job.Status, formatTime(createdAt),
	)
	if err != nil {
		err = mapWriteError(err)
		log.Error().Err(err).Str("company_id", job.CompanyID.String()).Msg("JobRepo: error creating job")
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return r.getOne(ctx, job.ID, false)
}

// SetStatus changes a job's status. Job lifecycle is managed outside the API;
// this exists for local tooling and tests.
func (r *JobRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a job and, through the cascade, its applications.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
