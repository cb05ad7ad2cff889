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

const companyColumns = `c.id, c.user_id, c.name, c.description, c.website, c.logo_url, c.location, c.created_at`

// CompanyRepo implements storage.CompanyRepository on sqlite.
type CompanyRepo struct {
	db *sql.DB
}

func NewCompanyRepo(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func scanCompany(row scanner, withOpenJobs bool) (*models.Company, error) {
	var (
		c         models.Company
		createdAt string
	)
	dest := []interface{}{&c.ID, &c.UserID, &c.Name, &c.Description, &c.Website, &c.LogoURL, &c.Location, &createdAt}
	if withOpenJobs {
		dest = append(dest, &c.OpenJobs)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = t
	return &c, nil
}

func (r *CompanyRepo) List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	query := `
		SELECT ` + companyColumns + `,
			(SELECT COUNT(*) FROM jobs j WHERE j.company_id = c.id AND j.status = ?) AS open_jobs
		FROM companies c
		ORDER BY c.name ASC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, models.JobStatusOpen, req.Limit, req.Offset)
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

func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	c, err := scanCompany(r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies c WHERE c.id = ?`, id), false)
	if err != nil {
		if notFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}
	return c, nil
}

func (r *CompanyRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+companyColumns+` FROM companies c WHERE c.user_id = ? ORDER BY c.created_at DESC`, userID)
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

func (r *CompanyRepo) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	query := `
		INSERT INTO companies (id, user_id, name, description, website, logo_url, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, user_id, name, description, website, logo_url, location, created_at`

	c, err := scanCompany(r.db.QueryRowContext(ctx, query,
		company.ID, company.UserID, company.Name, company.Description, company.Website, company.LogoURL, company.Location,
		formatTime(time.Now()),
	), false)
	if err != nil {
		err = mapWriteError(err)
		log.Error().Err(err).Msg("CompanyRepo: error creating company")
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return c, nil
}

func (r *CompanyRepo) Update(ctx context.Context, company *models.Company) (*models.Company, error) {
	query := `
		UPDATE companies
		SET name = ?, description = ?, website = ?, logo_url = ?, location = ?
		WHERE id = ? AND user_id = ?
		RETURNING id, user_id, name, description, website, logo_url, location, created_at`

	c, err := scanCompany(r.db.QueryRowContext(ctx, query,
		company.Name, company.Description, company.Website, company.LogoURL, company.Location, company.ID, company.UserID,
	), false)
	if err != nil {
		if notFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update company %s: %w", company.ID, mapWriteError(err))
	}
	return c, nil
}
