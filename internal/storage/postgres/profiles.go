package postgres

import (
	"context"
	"errors"
	"fmt"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, first_name, surname, gender, email, phone, country, created_at, updated_at`

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	if err := row.Scan(&p.ID, &p.FirstName, &p.Surname, &p.Gender, &p.Email, &p.Phone, &p.Country, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves the profile of an identity provider user.
func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return p, nil
}

// Upsert inserts the profile or replaces its editable fields.
func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, first_name, surname, gender, email, phone, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			surname = EXCLUDED.surname,
			gender = EXCLUDED.gender,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			country = EXCLUDED.country,
			updated_at = NOW()
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, query,
		profile.ID, profile.FirstName, profile.Surname, profile.Gender, profile.Email, profile.Phone, profile.Country,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile %s: %w", profile.ID, mapWriteError(err))
	}
	return p, nil
}
