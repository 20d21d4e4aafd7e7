package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (string, error)
	FindByID(ctx context.Context, profileID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
}

type ProfileUsecase interface {
	GetProfileBySession(ctx context.Context, sessionData string) (*responses.Profile, error)
	UpdateProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.Profile, error)
}
