package storage

import (
	"context"

	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	// GetOpenByID returns the job only while its status is open.
	GetOpenByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListOpen(ctx context.Context, req *dto.ListOpenJobsRequest) ([]models.Job, int, error)
	ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Company, error)
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	// Update only touches rows owned by company.UserID.
	Update(ctx context.Context, company *models.Company) (*models.Company, error)
}

// ProfileRepository defines the interface for applicant profile operations.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// ApplicationRepository defines the interface for job application operations.
// Create must report a duplicate (job, user) pair as ErrConflict and a missing
// job as ErrReferenceMissing.
type ApplicationRepository interface {
	CountByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (int, error)
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	ListByUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error)
	// DeleteOwned removes the application only when it belongs to req.UserID and
	// returns the deleted row.
	DeleteOwned(ctx context.Context, req *dto.CancelApplicationRequest) (*models.Application, error)
}

// Store groups the repositories of one backing database.
type Store struct {
	Jobs         JobRepository
	Companies    CompanyRepository
	Profiles     ProfileRepository
	Applications ApplicationRepository

	close func()
}

// NewStore assembles a Store. closeFn releases the underlying connection, may be nil.
func NewStore(jobs JobRepository, companies CompanyRepository, profiles ProfileRepository, apps ApplicationRepository, closeFn func()) *Store {
	return &Store{Jobs: jobs, Companies: companies, Profiles: profiles, Applications: apps, close: closeFn}
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}
