package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/storage"

	"github.com/google/uuid"
)

const profileColumns = `id, first_name, surname, gender, email, phone, country, created_at, updated_at`

// ProfileRepo implements storage.ProfileRepository on sqlite.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

func scanProfile(row scanner) (*models.Profile, error) {
	var (
		p                    models.Profile
		createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.FirstName, &p.Surname, &p.Gender, &p.Email, &p.Phone, &p.Country, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id))
	if err != nil {
		if notFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return p, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	now := formatTime(time.Now())
	query := `
		INSERT INTO profiles (id, first_name, surname, gender, email, phone, country, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			surname = excluded.surname,
			gender = excluded.gender,
			email = excluded.email,
			phone = excluded.phone,
			country = excluded.country,
			updated_at = excluded.updated_at
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRowContext(ctx, query,
		profile.ID, profile.FirstName, profile.Surname, profile.Gender, profile.Email, profile.Phone, profile.Country, now, now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile %s: %w", profile.ID, mapWriteError(err))
	}
	return p, nil
}
