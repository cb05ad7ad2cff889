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

const companyColumns = `c.id, c.user_id, c.name, c.description, c.website, c.logo_url, c.location, c.created_at`

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func scanCompany(row pgx.Row, withOpenJobs bool) (*models.Company, error) {
	var c models.Company
	dest := []interface{}{&c.ID, &c.UserID, &c.Name, &c.Description, &c.Website, &c.LogoURL, &c.Location, &c.CreatedAt}
	if withOpenJobs {
		dest = append(dest, &c.OpenJobs)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns the company directory with a count of open jobs per company.
func (r *CompanyRepo) List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	query := `
		SELECT ` + companyColumns + `,
			(SELECT COUNT(*) FROM jobs j WHERE j.company_id = c.id AND j.status = $1) AS open_jobs
		FROM companies c
		ORDER BY c.name ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, models.JobStatusOpen, req.Limit, req.Offset)
	if err != nil {
		log.Error().Err(err).Msg("CompanyRepo: error listing companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan companies: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// GetByID retrieves a company by ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies c WHERE c.id = $1`
	c, err := scanCompany(r.db.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("company_id", id.String()).Msg("CompanyRepo: error scanning company")
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}
	return c, nil
}

// ListByOwner retrieves the companies registered by a user.
func (r *CompanyRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies c WHERE c.user_id = $1 ORDER BY c.created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies by owner: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan companies by owner: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// Create saves a new company.
func (r *CompanyRepo) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	query := `
		INSERT INTO companies (id, user_id, name, description, website, logo_url, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, user_id, name, description, website, logo_url, location, created_at`

	c, err := scanCompany(r.db.QueryRow(ctx, query,
		company.ID, company.UserID, company.Name, company.Description, company.Website, company.LogoURL, company.Location,
	), false)
	if err != nil {
		err = mapWriteError(err)
		log.Error().Err(err).Msg("CompanyRepo: error creating company")
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	log.Info().Str("company_id", c.ID.String()).Msg("Company created successfully")
	return c, nil
}

// Update modifies a company owned by company.UserID.
func (r *CompanyRepo) Update(ctx context.Context, company *models.Company) (*models.Company, error) {
	query := `
		UPDATE companies
		SET name = $1, description = $2, website = $3, logo_url = $4, location = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, name, description, website, logo_url, location, created_at`

	c, err := scanCompany(r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Website, company.LogoURL, company.Location, company.ID, company.UserID,
	), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		err = mapWriteError(err)
		log.Error().Err(err).Str("company_id", company.ID.String()).Msg("CompanyRepo: error updating company")
		return nil, fmt.Errorf("failed to update company %s: %w", company.ID, err)
	}
	return c, nil
}
