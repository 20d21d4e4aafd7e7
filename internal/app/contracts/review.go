package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) (string, error)
	FindByPractitionerID(ctx context.Context, practitionerID string) ([]models.Review, error)
}

type ReviewUsecase interface {
	Create(ctx context.Context, sessionData string, request *requests.CreateReview) (*responses.Review, error)
	// FindByPractitioner degrades to an empty list on fetch failure.
	FindByPractitioner(ctx context.Context, practitionerID string) []responses.Review
}
