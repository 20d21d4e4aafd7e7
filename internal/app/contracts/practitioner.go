package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PractitionerRepository interface {
	CreatePractitioner(ctx context.Context, practitioner *models.Practitioner) (string, error)
	FindAll(ctx context.Context) ([]models.Practitioner, error)
	FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error)
	FindByProfileID(ctx context.Context, profileID string) (*models.Practitioner, error)
}

type PractitionerUsecase interface {
	// FindAll degrades to an empty list on a failed fetch; the error is
	// logged, never returned. Callers cannot tell "no matches" apart from
	// a failed remote call.
	FindAll(ctx context.Context, filters *requests.PractitionerFilters) []responses.Practitioner
	FindByID(ctx context.Context, practitionerID string) *responses.PractitionerDetail
	ListSpecialties(ctx context.Context) []string
}
