package integration_tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"remote-jobs-api/internal/database"
	"remote-jobs-api/internal/gate"
	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/notify"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/storage/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeRelay records relay calls and answers with a configurable status.
type fakeRelay struct {
	mu     sync.Mutex
	status int
	calls  []notify.ApplicationEmail
	srv    *httptest.Server
}

func newFakeRelay(t *testing.T, status int) *fakeRelay {
	t.Helper()
	r := &fakeRelay{status: status}
	r.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var msg notify.ApplicationEmail
		_ = json.NewDecoder(req.Body).Decode(&msg)
		r.mu.Lock()
		r.calls = append(r.calls, msg)
		r.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(r.status)
		if r.status == http.StatusOK {
			_, _ = w.Write([]byte(`{"success":true,"message":"Email sent successfully"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":false,"message":"Failed to send email","error":"smtp unavailable"}`))
	}))
	t.Cleanup(r.srv.Close)
	return r
}

func (r *fakeRelay) Calls() []notify.ApplicationEmail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.ApplicationEmail(nil), r.calls...)
}

type env struct {
	ctx   context.Context
	store *storage.Store
	jobs  *sqlite.JobRepo
	relay *fakeRelay
	gate  *gate.MemoryGate
	svc   services.ApplicationService
}

func newEnv(t *testing.T, relayStatus int) *env {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db, database.DialectSQLite))

	store := sqlite.NewStore(db)
	t.Cleanup(store.Close)

	relay := newFakeRelay(t, relayStatus)
	g := gate.NewMemoryGate(time.Hour)
	svc := services.NewApplicationService(services.ApplicationServiceConfig{
		Store: store,
		Gate:  g,
		Notifier: notify.NewClient(notify.ClientConfig{
			BaseURL:         relay.srv.URL,
			ApplicationPath: "/api/v1/relay/job-application-email",
			Timeout:         2 * time.Second,
		}),
		PublicURL: "https://jobs.example",
	})
	return &env{ctx: ctx, store: store, jobs: store.Jobs.(*sqlite.JobRepo), relay: relay, gate: g, svc: svc}
}

func (e *env) createCompany(t *testing.T, owner uuid.UUID, name string) *models.Company {
	t.Helper()
	c, err := e.store.Companies.Create(e.ctx, &models.Company{UserID: owner, Name: name})
	require.NoError(t, err)
	return c
}

func (e *env) createJob(t *testing.T, companyID uuid.UUID, title string, status models.JobStatus) *models.Job {
	t.Helper()
	j, err := e.store.Jobs.Create(e.ctx, &models.Job{
		CompanyID: companyID,
		UserID:    uuid.New(),
		Title:     title,
		Status:    status,
	})
	require.NoError(t, err)
	return j
}

func (e *env) createApplicant(t *testing.T, first, surname string) *identity.Session {
	t.Helper()
	s := &identity.Session{UserID: uuid.New(), Email: first + "@example.com", SessionID: uuid.NewString()}
	_, err := e.store.Profiles.Upsert(e.ctx, &models.Profile{ID: s.UserID, FirstName: first, Surname: surname, Email: s.Email})
	require.NoError(t, err)
	return s
}

func (e *env) countApplications(t *testing.T, jobID, userID uuid.UUID) int {
	t.Helper()
	n, err := e.store.Applications.CountByJobAndUser(e.ctx, jobID, userID)
	require.NoError(t, err)
	return n
}
