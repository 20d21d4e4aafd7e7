package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log                    *zap.Logger
	UserRepository         contracts.UserRepository
	ProfileRepository      contracts.ProfileRepository
	PractitionerRepository contracts.PractitionerRepository
	SessionService         contracts.SessionService
	Storage                contracts.Storage
	InternalConfig         *config.InternalConfig
}

func NewAuthUsecase(
	log *zap.Logger,
	userRepository contracts.UserRepository,
	profileRepository contracts.ProfileRepository,
	practitionerRepository contracts.PractitionerRepository,
	sessionService contracts.SessionService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		Log:                    log,
		UserRepository:         userRepository,
		ProfileRepository:      profileRepository,
		PractitionerRepository: practitionerRepository,
		SessionService:         sessionService,
		Storage:                storage,
		InternalConfig:         internalConfig,
	}
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error) {
	userID, err := uc.createUserWithProfile(ctx, request.Email, request.Password, request.RetypePassword, request.FullName, constvars.RolePatient)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patient registered",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Register{UserID: userID, ProfileID: userID}, nil
}

func (uc *authUsecase) RegisterPractitioner(ctx context.Context, request *requests.RegisterPractitioner) (*responses.Register, error) {
	userID, err := uc.createUserWithProfile(ctx, request.Email, request.Password, request.RetypePassword, request.FullName, constvars.RolePractitioner)
	if err != nil {
		return nil, err
	}

	profileImageKey, err := uc.uploadVerificationImage(ctx, userID, constvars.VerificationImageTypeProfile, request.ProfileImage)
	if err != nil {
		return nil, err
	}
	idImageKey, err := uc.uploadVerificationImage(ctx, userID, constvars.VerificationImageTypeID, request.IDImage)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	practitionerModel := &models.Practitioner{
		ProfileID:         userID,
		Specialty:         request.Specialty,
		Credentials:       request.Credentials,
		ConsultationTypes: request.ConsultationTypes,
		Bio:               request.Bio,
		ProfileImageKey:   profileImageKey,
		IDImageKey:        idImageKey,
	}
	practitionerModel.CreatedAt = now
	practitionerModel.UpdatedAt = now

	practitionerID, err := uc.PractitionerRepository.CreatePractitioner(ctx, practitionerModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("practitioner registered",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)
	return &responses.Register{UserID: userID, ProfileID: userID, PractitionerID: practitionerID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	sessionModel := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
	}

	if profile.IsPractitioner() {
		practitioner, err := uc.PractitionerRepository.FindByProfileID(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		if practitioner != nil {
			sessionModel.PractitionerID = practitioner.ID
		}
	}

	if err := uc.SessionService.CreateSession(ctx, sessionModel); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionModel.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("user logged in",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{Token: token}, nil
}

// Logout always succeeds for the caller. The token is gone client-side
// either way; a failed session delete is logged and left to expire by TTL.
func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		uc.Log.Error("delete session failed on logout",
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *authUsecase) GetSession(ctx context.Context, sessionData string) (*responses.Session, error) {
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

	return &responses.Session{
		UserID: session.UserID,
		Email:  session.Email,
		Profile: &responses.Profile{
			ID:        profile.ID,
			FullName:  profile.FullName,
			Role:      profile.Role,
			CreatedAt: profile.CreatedAt,
			UpdatedAt: profile.UpdatedAt,
		},
	}, nil
}

// createUserWithProfile inserts the credential record and its profile. The
// profile reuses the user id so the pair never needs a join key.
func (uc *authUsecase) createUserWithProfile(ctx context.Context, email, password, retypePassword, fullName, role string) (string, error) {
	if password != retypePassword {
		return "", exceptions.ErrPasswordDoNotMatch(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existingUser != nil {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return "", exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		Email:    email,
		Password: hashedPassword,
	}
	userModel.CreatedAt = now
	userModel.UpdatedAt = now

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return "", err
	}

	profileModel := &models.Profile{
		ID:       userID,
		FullName: fullName,
		Role:     role,
	}
	profileModel.CreatedAt = now
	profileModel.UpdatedAt = now

	if _, err := uc.ProfileRepository.CreateProfile(ctx, profileModel); err != nil {
		return "", err
	}
	return userID, nil
}

func (uc *authUsecase) uploadVerificationImage(ctx context.Context, userID, imageType, encodedImage string) (string, error) {
	if encodedImage == "" {
		return "", nil
	}

	decoded, err := base64.StdEncoding.DecodeString(encodedImage)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if int64(len(decoded)) > uc.InternalConfig.App.VerificationImageMaxBytes {
		return "", exceptions.ErrImageValidation(fmt.Errorf("image exceeds %d bytes", uc.InternalConfig.App.VerificationImageMaxBytes))
	}

	objectKey := utils.GenerateVerificationImageKey(userID, imageType)
	storedKey, err := uc.Storage.PutBase64Object(ctx, objectKey, []byte(encodedImage), http.DetectContentType(decoded))
	if err != nil {
		return "", err
	}

	uc.Log.Info("verification image stored",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingObjectKeyKey, storedKey),
	)
	return storedKey, nil
}
