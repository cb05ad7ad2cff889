package integration_tests

import (
	"net/http"
	"sync"
	"testing"

	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_EndToEndSuccess(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	res, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	require.Equal(t, services.OutcomeSuccess, res.Outcome)

	apps, err := e.store.Applications.ListByUser(e.ctx, &dto.ListMyApplicationsRequest{UserID: ada.UserID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	app := apps[0]
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, ada.UserID, app.UserID)
	assert.Equal(t, "Ada", app.FirstName)
	assert.Equal(t, "Lovelace", app.Surname)
	assert.Equal(t, "Go Engineer", app.JobTitle)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	calls := e.relay.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ada.Email, calls[0].Email)
	assert.Equal(t, "Go Engineer", calls[0].JobTitle)
	assert.Equal(t, "Analytical Engines", calls[0].JobPosition)
	assert.Equal(t, "https://jobs.example/myjobs", calls[0].JobLink)

	disabled, err := e.svc.ApplyStatus(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	assert.True(t, disabled)
}

func TestWorkflow_RelayFailureStillSucceeds(t *testing.T) {
	e := newEnv(t, http.StatusInternalServerError)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	res, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeSuccess, res.Outcome)
	assert.Equal(t, 1, e.countApplications(t, job.ID, ada.UserID))
	assert.Len(t, e.relay.Calls(), 1)
}

func TestWorkflow_ClosedAndDraftJobsRejectEveryone(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	ada := e.createApplicant(t, "Ada", "Lovelace")

	for _, status := range []models.JobStatus{models.JobStatusClosed, models.JobStatusDraft} {
		job := e.createJob(t, company.ID, "Go Engineer", status)
		for _, session := range []*identity.Session{nil, ada} {
			res, err := e.svc.SubmitApplication(e.ctx, session, "", job.ID)
			require.NoError(t, err)
			assert.Equal(t, services.OutcomeJobUnavailable, res.Outcome)
		}
		assert.Equal(t, 0, e.countApplications(t, job.ID, ada.UserID))
	}

	res, err := e.svc.SubmitApplication(e.ctx, ada, "", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeJobUnavailable, res.Outcome, "unknown job")
	assert.Empty(t, e.relay.Calls())
}

func TestWorkflow_JobClosedAfterListing(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	require.NoError(t, e.jobs.SetStatus(e.ctx, job.ID, models.JobStatusClosed))

	res, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeJobUnavailable, res.Outcome)
}

func TestWorkflow_IncompleteProfile(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	blank := e.createApplicant(t, "   ", "Lovelace")

	res, err := e.svc.SubmitApplication(e.ctx, blank, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeProfileIncomplete, res.Outcome)
	assert.Equal(t, services.FieldFirstName, res.Field)

	noProfile := &identity.Session{UserID: uuid.New(), Email: "ghost@example.com"}
	res, err = e.svc.SubmitApplication(e.ctx, noProfile, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeProfileIncomplete, res.Outcome)
}

func TestWorkflow_SecondSubmitIsAlreadyApplied(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	first, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	require.Equal(t, services.OutcomeSuccess, first.Outcome)

	// A fresh session (another tab or device) still hits the store check.
	otherTab := &identity.Session{UserID: ada.UserID, Email: ada.Email, SessionID: "other-tab"}
	second, err := e.svc.SubmitApplication(e.ctx, otherTab, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeAlreadyApplied, second.Outcome)
	assert.True(t, second.ApplyDisabled)
	assert.Equal(t, 1, e.countApplications(t, job.ID, ada.UserID))
	assert.Len(t, e.relay.Calls(), 1)
}

func TestWorkflow_ConcurrentSubmitsCreateOneApplication(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	const attempts = 2
	results := make([]*services.Result, attempts)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			res, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
			if err == nil {
				results[i] = res
			}
		}(i)
	}
	close(start)
	wg.Wait()

	outcomes := map[services.Outcome]int{}
	for _, r := range results {
		require.NotNil(t, r)
		outcomes[r.Outcome]++
	}
	assert.Equal(t, 1, outcomes[services.OutcomeSuccess])
	assert.Equal(t, 1, outcomes[services.OutcomeAlreadyApplied]+outcomes[services.OutcomeSubmissionFailed])
	assert.Equal(t, 1, e.countApplications(t, job.ID, ada.UserID))
}

func TestWorkflow_CancelThenReapply(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	first, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	require.Equal(t, services.OutcomeSuccess, first.Outcome)

	require.NoError(t, e.svc.CancelApplication(e.ctx, ada, first.Application.ID))
	assert.Equal(t, 0, e.countApplications(t, job.ID, ada.UserID))

	disabled, err := e.svc.ApplyStatus(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	assert.False(t, disabled, "cancel re-enables applying")

	again, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeSuccess, again.Outcome)
	assert.Equal(t, 1, e.countApplications(t, job.ID, ada.UserID))
}

func TestWorkflow_CancelIsScopedToOwner(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")
	mallory := e.createApplicant(t, "Mallory", "Smith")

	res, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	require.Equal(t, services.OutcomeSuccess, res.Outcome)

	err = e.svc.CancelApplication(e.ctx, mallory, res.Application.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, 1, e.countApplications(t, job.ID, ada.UserID))
}

func TestWorkflow_JobDeletedBeforeInsert(t *testing.T) {
	e := newEnv(t, http.StatusOK)
	company := e.createCompany(t, uuid.New(), "Analytical Engines")
	job := e.createJob(t, company.ID, "Go Engineer", models.JobStatusOpen)
	ada := e.createApplicant(t, "Ada", "Lovelace")

	require.NoError(t, e.jobs.Delete(e.ctx, job.ID))

	_, err := e.store.Applications.Create(e.ctx, &models.Application{
		JobID: job.ID, UserID: ada.UserID, FirstName: "Ada", Surname: "Lovelace", Status: models.ApplicationStatusPending,
	})
	assert.ErrorIs(t, err, storage.ErrReferenceMissing)

	res, err := e.svc.SubmitApplication(e.ctx, ada, "", job.ID)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeJobUnavailable, res.Outcome)
}
