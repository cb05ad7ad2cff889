package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/metrics"
	"remote-jobs-api/internal/models"
	"remote-jobs-api/internal/notify"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/transport/dto"

	"github.com/rs/zerolog/log"
)

type profileService struct {
	profileRepo   storage.ProfileRepository
	notifier      notify.Notifier
	notifyTimeout time.Duration
}

// NewProfileService creates a new instance of ProfileService. notifier may be nil.
func NewProfileService(store *storage.Store, notifier notify.Notifier) ProfileService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &profileService{profileRepo: store.Profiles, notifier: notifier, notifyTimeout: defaultNotifyTimeout}
}

// GetMyProfile returns the caller's profile, or an empty one when none is stored yet.
func (s *profileService) GetMyProfile(ctx context.Context, session *identity.Session) (*models.Profile, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}
	profile, err := s.profileRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &models.Profile{ID: session.UserID, Email: session.Email}, nil
		}
		return nil, mapRepoError(err, "getting profile")
	}
	return profile, nil
}

// UpsertMyProfile saves the caller's profile. Once both names are present the
// applicant is asked to book a verification call.
func (s *profileService) UpsertMyProfile(ctx context.Context, session *identity.Session, req *dto.UpsertProfileRequest) (*models.Profile, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}
	profile, err := s.profileRepo.Upsert(ctx, &models.Profile{
		ID:        session.UserID,
		FirstName: strings.TrimSpace(req.FirstName),
		Surname:   strings.TrimSpace(req.Surname),
		Gender:    req.Gender,
		Email:     session.Email,
		Phone:     req.Phone,
		Country:   strings.TrimSpace(req.Country),
	})
	if err != nil {
		return nil, mapRepoError(err, "saving profile")
	}

	if IsProfileComplete(profile) && profile.Email != "" {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
		defer cancel()
		err := s.notifier.NotifyVerification(nctx, notify.VerificationEmail{
			Email:     profile.Email,
			FirstName: profile.FirstName,
			Surname:   profile.Surname,
		})
		metrics.ObserveNotification("verification", err)
		if err != nil {
			log.Warn().Err(err).Str("user_id", profile.ID.String()).Msg("UpsertMyProfile: verification email failed")
		}
	}
	return profile, nil
}

// IsProfileComplete reports whether the profile may be used to apply.
func IsProfileComplete(p *models.Profile) bool {
	return p != nil && !isBlank(p.FirstName) && !isBlank(p.Surname)
}
