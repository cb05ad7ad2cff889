package services_test

import (
	"context"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/notify"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

var _ storage.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) GetOpenByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobRepository) ListOpen(ctx context.Context, req *dto.ListOpenJobsRequest) ([]models.Job, int, error) {
	args := m.Called(ctx, req)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Int(1), args.Error(2)
}

func (m *MockJobRepository) ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	created, _ := args.Get(0).(*models.Job)
	return created, args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

var _ storage.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	args := m.Called(ctx, req)
	companies, _ := args.Get(0).([]models.Company)
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *MockCompanyRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	args := m.Called(ctx, userID)
	companies, _ := args.Get(0).([]models.Company)
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

var _ storage.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

type MockApplicationRepository struct{ mock.Mock }

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

func (m *MockApplicationRepository) CountByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	args := m.Called(ctx, app)
	a, _ := args.Get(0).(*models.Application)
	return a, args.Error(1)
}

func (m *MockApplicationRepository) ListByUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	args := m.Called(ctx, req)
	apps, _ := args.Get(0).([]models.Application)
	return apps, args.Error(1)
}

func (m *MockApplicationRepository) DeleteOwned(ctx context.Context, req *dto.CancelApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*models.Application)
	return a, args.Error(1)
}

type MockGate struct{ mock.Mock }

func (m *MockGate) Disable(ctx context.Context, sessionKey string, jobID uuid.UUID) error {
	return m.Called(ctx, sessionKey, jobID).Error(0)
}

func (m *MockGate) IsDisabled(ctx context.Context, sessionKey string, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, sessionKey, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGate) Clear(ctx context.Context, sessionKey string, jobID uuid.UUID) error {
	return m.Called(ctx, sessionKey, jobID).Error(0)
}

type MockNotifier struct{ mock.Mock }

var _ notify.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) NotifyApplication(ctx context.Context, msg notify.ApplicationEmail) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockNotifier) NotifyVerification(ctx context.Context, msg notify.VerificationEmail) error {
	return m.Called(ctx, msg).Error(0)
}

type repoMocks struct {
	jobs      *MockJobRepository
	companies *MockCompanyRepository
	profiles  *MockProfileRepository
	apps      *MockApplicationRepository
}

func newRepoMocks() (*repoMocks, *storage.Store) {
	m := &repoMocks{
		jobs:      &MockJobRepository{},
		companies: &MockCompanyRepository{},
		profiles:  &MockProfileRepository{},
		apps:      &MockApplicationRepository{},
	}
	return m, storage.NewStore(m.jobs, m.companies, m.profiles, m.apps, nil)
}
