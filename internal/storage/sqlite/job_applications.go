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

const applicationColumns = `id, job_id, user_id, email, first_name, surname, gender, job_title, status, created_at`

// ApplicationRepo implements storage.ApplicationRepository on sqlite.
type ApplicationRepo struct {
	db *sql.DB
}

func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row scanner) (*models.Application, error) {
	var (
		a         models.Application
		createdAt string
	)
	err := row.Scan(&a.ID, &a.JobID, &a.UserID, &a.Email, &a.FirstName, &a.Surname, &a.Gender, &a.JobTitle, &a.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) CountByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = ? AND user_id = ?`, jobID, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications for job %s: %w", jobID, err)
	}
	return count, nil
}

func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	query := `
		INSERT INTO applications (id, job_id, user_id, email, first_name, surname, gender, job_title, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + applicationColumns

	created, err := scanApplication(r.db.QueryRowContext(ctx, query,
		app.ID, app.JobID, app.UserID, app.Email, app.FirstName, app.Surname, app.Gender, app.JobTitle, app.Status,
		formatTime(time.Now()),
	))
	if err != nil {
		err = mapWriteError(err)
		log.Error().Err(err).Str("job_id", app.JobID.String()).Str("user_id", app.UserID.String()).Msg("ApplicationRepo: error creating application")
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

func (r *ApplicationRepo) ListByUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, req.UserID, req.Limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by user: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applications: %w", err)
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepo) DeleteOwned(ctx context.Context, req *dto.CancelApplicationRequest) (*models.Application, error) {
	deleted, err := scanApplication(r.db.QueryRowContext(ctx,
		`DELETE FROM applications WHERE id = ? AND user_id = ? RETURNING `+applicationColumns, req.ID, req.UserID))
	if err != nil {
		if notFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("application_id", req.ID.String()).Msg("ApplicationRepo: error deleting application")
		return nil, fmt.Errorf("failed to delete application: %w", err)
	}
	return deleted, nil
}
