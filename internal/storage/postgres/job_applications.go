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

const applicationColumns = `id, job_id, user_id, email, first_name, surname, gender, job_title, status, created_at`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.JobID, &a.UserID, &a.Email, &a.FirstName, &a.Surname, &a.Gender, &a.JobTitle, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) CountByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1 AND user_id = $2`, jobID, userID).Scan(&count)
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + applicationColumns

	created, err := scanApplication(r.db.QueryRow(ctx, query,
		app.ID, app.JobID, app.UserID, app.Email, app.FirstName, app.Surname, app.Gender, app.JobTitle, app.Status,
	))
	if err != nil {
		err = mapWriteError(err)
		log.Error().Err(err).Str("job_id", app.JobID.String()).Str("user_id", app.UserID.String()).Msg("ApplicationRepo: error creating application")
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Info().Str("application_id", created.ID.String()).Msg("Application created successfully")
	return created, nil
}

func (r *ApplicationRepo) ListByUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, req.UserID, req.Limit, req.Offset)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID.String()).Msg("ApplicationRepo: error listing applications")
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
	query := `DELETE FROM applications WHERE id = $1 AND user_id = $2 RETURNING ` + applicationColumns

	deleted, err := scanApplication(r.db.QueryRow(ctx, query, req.ID, req.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Info().Str("application_id", req.ID.String()).Msg("Application not found for deletion")
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("application_id", req.ID.String()).Msg("ApplicationRepo: error deleting application")
		return nil, fmt.Errorf("failed to delete application: %w", err)
	}

	log.Info().Str("application_id", req.ID.String()).Msg("Application deleted successfully")
	return deleted, nil
}
