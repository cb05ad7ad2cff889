package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remote-jobs-api/internal/gate"
	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/metrics"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/notify"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultNotifyTimeout = 10 * time.Second

type applicationService struct {
	jobRepo       storage.JobRepository
	profileRepo   storage.ProfileRepository
	appRepo       storage.ApplicationRepository
	gate          gate.Gate
	notifier      notify.Notifier
	trackingLink  string
	notifyTimeout time.Duration
}

// ApplicationServiceConfig holds the workflow's collaborators.
type ApplicationServiceConfig struct {
	Store         *storage.Store
	Gate          gate.Gate
	Notifier      notify.Notifier
	PublicURL     string // base of the tracking link sent to applicants
	NotifyTimeout time.Duration
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(cfg ApplicationServiceConfig) ApplicationService {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Noop{}
	}
	timeout := cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &applicationService{
		jobRepo:       cfg.Store.Jobs,
		profileRepo:   cfg.Store.Profiles,
		appRepo:       cfg.Store.Applications,
		gate:          cfg.Gate,
		notifier:      notifier,
		trackingLink:  strings.TrimRight(cfg.PublicURL, "/") + "/myjobs",
		notifyTimeout: timeout,
	}
}

// SubmitApplication checks, in order, that the job is still open, the caller is
// signed in, the profile carries both names and no application exists yet, then
// records the application and notifies the applicant.
func (s *applicationService) SubmitApplication(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (*Result, error) {
	res, err := s.submit(ctx, session, sessionKey, jobID)
	if err != nil {
		return nil, err
	}
	metrics.ObserveSubmission(string(res.Outcome))
	return res, nil
}

func (s *applicationService) submit(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (*Result, error) {
	// 1. Re-fetch the job; the listing the caller saw may be stale.
	job, err := s.jobRepo.GetOpenByID(ctx, &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &Result{Outcome: OutcomeJobUnavailable, Message: msgJobUnavailable}, nil
		}
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", jobID))
	}

	// 2. Authentication
	if session == nil {
		return &Result{Outcome: OutcomeNotAuthenticated, Message: msgNotAuthenticated}, nil
	}
	if sessionKey == "" {
		sessionKey = session.Key()
	}

	// 3. Profile completeness
	profile, err := s.profileRepo.GetByID(ctx, session.UserID)
	if err != nil {
		log.Info().Err(err).Str("user_id", session.UserID.String()).Msg("SubmitApplication: profile unavailable")
		return &Result{Outcome: OutcomeProfileIncomplete, Field: FieldFirstName, Message: msgProfileMissing}, nil
	}
	if isBlank(profile.FirstName) {
		return &Result{Outcome: OutcomeProfileIncomplete, Field: FieldFirstName, Message: msgFirstNameMissing}, nil
	}
	if isBlank(profile.Surname) {
		return &Result{Outcome: OutcomeProfileIncomplete, Field: FieldSurname, Message: msgSurnameMissing}, nil
	}

	// 4. Duplicate check. Advisory only, the unique constraint decides.
	count, err := s.appRepo.CountByJobAndUser(ctx, jobID, session.UserID)
	if err != nil {
		log.Warn().Err(err).Str("job_id", jobID.String()).Str("user_id", session.UserID.String()).Msg("SubmitApplication: duplicate check failed, relying on store constraint")
		count = 0
	}
	if count > 0 {
		return s.alreadyApplied(ctx, sessionKey, jobID), nil
	}

	// 5. Insert with names and job title frozen at submission time.
	email := session.Email
	if email == "" {
		email = profile.Email
	}
	created, err := s.appRepo.Create(ctx, &models.Application{
		JobID:     jobID,
		UserID:    session.UserID,
		Email:     email,
		FirstName: strings.TrimSpace(profile.FirstName),
		Surname:   strings.TrimSpace(profile.Surname),
		Gender:    profile.Gender,
		JobTitle:  job.Title,
		Status:    models.ApplicationStatusPending,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			return s.alreadyApplied(ctx, sessionKey, jobID), nil
		case errors.Is(err, storage.ErrReferenceMissing):
			return &Result{Outcome: OutcomeJobUnavailable, Message: msgJobRemoved}, nil
		default:
			log.Error().Err(err).Str("job_id", jobID.String()).Msg("SubmitApplication: insert failed")
			return &Result{
				Outcome: OutcomeSubmissionFailed,
				Message: msgSubmissionFailedPf + err.Error(),
				Detail:  err.Error(),
			}, nil
		}
	}

	s.disable(ctx, sessionKey, jobID)
	log.Info().Str("application_id", created.ID.String()).Str("job_id", jobID.String()).Str("user_id", session.UserID.String()).Msg("SubmitApplication: application recorded")

	// 6. Best effort; the application is already durable.
	s.notifyApplicant(ctx, created, job)

	return &Result{Outcome: OutcomeSuccess, Message: msgSuccess, Application: created, ApplyDisabled: true}, nil
}

func (s *applicationService) alreadyApplied(ctx context.Context, sessionKey string, jobID uuid.UUID) *Result {
	s.disable(ctx, sessionKey, jobID)
	return &Result{Outcome: OutcomeAlreadyApplied, Message: msgAlreadyApplied, ApplyDisabled: true}
}

func (s *applicationService) disable(ctx context.Context, sessionKey string, jobID uuid.UUID) {
	if s.gate == nil {
		return
	}
	if err := s.gate.Disable(ctx, sessionKey, jobID); err != nil {
		log.Warn().Err(err).Str("job_id", jobID.String()).Msg("SubmitApplication: could not persist apply gate")
	}
}

func (s *applicationService) notifyApplicant(ctx context.Context, app *models.Application, job *models.Job) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	err := s.notifier.NotifyApplication(nctx, notify.ApplicationEmail{
		Email:       app.Email,
		FirstName:   app.FirstName,
		Surname:     app.Surname,
		JobTitle:    app.JobTitle,
		JobPosition: job.CompanyName,
		JobLink:     s.trackingLink,
	})
	metrics.ObserveNotification("application", err)
	if err != nil {
		log.Warn().Err(err).Str("application_id", app.ID.String()).Msg("SubmitApplication: applicant notification failed")
	}
}

// ApplyStatus reports whether the apply action should be withheld for this
// session and job.
func (s *applicationService) ApplyStatus(ctx context.Context, session *identity.Session, sessionKey string, jobID uuid.UUID) (bool, error) {
	if session != nil && sessionKey == "" {
		sessionKey = session.Key()
	}
	if s.gate != nil && sessionKey != "" {
		disabled, err := s.gate.IsDisabled(ctx, sessionKey, jobID)
		if err != nil {
			log.Warn().Err(err).Str("job_id", jobID.String()).Msg("ApplyStatus: gate lookup failed")
		} else if disabled {
			return true, nil
		}
	}
	if session == nil {
		return false, nil
	}

	count, err := s.appRepo.CountByJobAndUser(ctx, jobID, session.UserID)
	if err != nil {
		return false, mapRepoError(err, "checking existing application")
	}
	if count > 0 {
		s.disable(ctx, sessionKey, jobID)
		return true, nil
	}
	return false, nil
}

// CancelApplication deletes one of the caller's applications and re-enables
// applying to that job from this session.
func (s *applicationService) CancelApplication(ctx context.Context, session *identity.Session, applicationID uuid.UUID) error {
	if session == nil {
		return ErrUnauthenticated
	}
	deleted, err := s.appRepo.DeleteOwned(ctx, &dto.CancelApplicationRequest{ID: applicationID, UserID: session.UserID})
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("cancelling application %s", applicationID))
	}

	if s.gate != nil {
		if err := s.gate.Clear(ctx, session.Key(), deleted.JobID); err != nil {
			log.Warn().Err(err).Str("job_id", deleted.JobID.String()).Msg("CancelApplication: could not clear apply gate")
		}
	}
	log.Info().Str("application_id", applicationID.String()).Str("user_id", session.UserID.String()).Msg("CancelApplication: application withdrawn")
	return nil
}

func (s *applicationService) ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	if req.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	req.Limit, req.Offset = normalizePage(req.Limit, req.Offset, 20, 100)
	apps, err := s.appRepo.ListByUser(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return apps, nil
}
