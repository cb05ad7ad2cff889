package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"remote-jobs-api/internal/api/handlers"
	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/mailer"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newVerifier() *identity.Verifier {
	return identity.NewVerifier(testSecret, "", "authenticated")
}

func newSession() *identity.Session {
	return &identity.Session{UserID: uuid.New(), Email: "ada@example.com", SessionID: uuid.NewString()}
}

func bearer(t *testing.T, s *identity.Session) string {
	t.Helper()
	token, err := newVerifier().Issue(s, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// doRequest sends body as JSON when non-nil. auth is the Authorization header value.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRelayRequest(t *testing.T, router http.Handler, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/relay/verification-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// --- Service mocks ---

type MockApplicationService struct{ mock.Mock }

func (m *MockApplicationService) SubmitApplication(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (*services.Result, error) {
	args := m.Called(ctx, session, sessionKey, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Result), args.Error(1)
}

func (m *MockApplicationService) ApplyStatus(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, session, sessionKey, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationService) CancelApplication(ctx context.Context, session *identity.Session, applicationID uuid.UUID) error {
	return m.Called(ctx, session, applicationID).Error(0)
}

func (m *MockApplicationService) ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

type MockJobService struct{ mock.Mock }

func (m *MockJobService) ListOpenJobs(ctx context.Context, req *dto.ListOpenJobsRequest) (*services.JobPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.JobPage), args.Error(1)
}

func (m *MockJobService) GetOpenJob(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListJobsByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

var _ services.JobService = (*MockJobService)(nil)

type MockCompanyService struct{ mock.Mock }

func (m *MockCompanyService) ListCompanies(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) ListMyCompanies(ctx context.Context, userID uuid.UUID) ([]models.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

var _ services.CompanyService = (*MockCompanyService)(nil)

type MockProfileService struct{ mock.Mock }

func (m *MockProfileService) GetMyProfile(ctx context.Context, session *identity.Session) (*models.Profile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) UpsertMyProfile(ctx context.Context, session *identity.Session, req *dto.UpsertProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

var _ services.ProfileService = (*MockProfileService)(nil)

type MockRelayMailer struct{ mock.Mock }

func (m *MockRelayMailer) SendApplicationReceived(ctx context.Context, d mailer.ApplicationReceived) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

func (m *MockRelayMailer) SendVerificationRequest(ctx context.Context, d mailer.VerificationRequest) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

var _ handlers.RelayMailer = (*MockRelayMailer)(nil)

// sessionFor matches the session the auth middleware derived from the token.
func sessionFor(s *identity.Session) interface{} {
	return mock.MatchedBy(func(got *identity.Session) bool {
		return got != nil && got.UserID == s.UserID && got.SessionID == s.SessionID
	})
}
