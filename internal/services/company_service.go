package services

import (
	"context"
	"fmt"
	"strings"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
)

type companyService struct {
	companyRepo storage.CompanyRepository
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(store *storage.Store) CompanyService {
	return &companyService{companyRepo: store.Companies}
}

func (s *companyService) ListCompanies(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	req.Limit, req.Offset = normalizePage(req.Limit, req.Offset, 20, 100)
	companies, err := s.companyRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing companies")
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting company by ID")
	}
	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if req.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	company, err := s.companyRepo.Create(ctx, &models.Company{
		UserID:      req.UserID,
		Name:        name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Location:    req.Location,
	})
	if err != nil {
		return nil, mapRepoError(err, "creating company")
	}
	return company, nil
}

// UpdateCompany only succeeds for the owner; other callers see ErrNotFound.
func (s *companyService) UpdateCompany(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if req.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	company, err := s.companyRepo.Update(ctx, &models.Company{
		ID:          req.ID,
		UserID:      req.UserID,
		Name:        name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Location:    req.Location,
	})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating company %s", req.ID))
	}
	return company, nil
}

func (s *companyService) ListMyCompanies(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	companies, err := s.companyRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "listing own companies")
	}
	return companies, nil
}
