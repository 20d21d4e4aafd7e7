package profiles

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type profileUsecase struct {
	Log               *zap.Logger
	ProfileRepository contracts.ProfileRepository
	SessionService    contracts.SessionService
}

func NewProfileUsecase(
	log *zap.Logger,
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
) contracts.ProfileUsecase {
	return &profileUsecase{
		Log:               log,
		ProfileRepository: profileRepository,
		SessionService:    sessionService,
	}
}

func (uc *profileUsecase) GetProfileBySession(ctx context.Context, sessionData string) (*responses.Profile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	return &responses.Profile{
		ID:        profile.ID,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}, nil
}

// UpdateProfileBySession changes the display name only; the role has no
// edit path after sign-up. The session blob is refreshed so the new name
// shows up without a re-login.
func (uc *profileUsecase) UpdateProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.Profile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	profile.FullName = request.FullName
	if err := uc.ProfileRepository.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	session.FullName = request.FullName
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		uc.Log.Warn("session refresh after profile update failed",
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
	}

	uc.Log.Info("profile updated",
		zap.String(constvars.LoggingProfileIDKey, profile.ID),
	)

	return &responses.Profile{
		ID:        profile.ID,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}, nil
}
