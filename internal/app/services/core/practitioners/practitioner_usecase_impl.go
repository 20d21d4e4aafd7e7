package practitioners

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type practitionerUsecase struct {
	Log                    *zap.Logger
	PractitionerRepository contracts.PractitionerRepository
	ProfileRepository      contracts.ProfileRepository
	ReviewUsecase          contracts.ReviewUsecase
}

func NewPractitionerUsecase(
	log *zap.Logger,
	practitionerRepository contracts.PractitionerRepository,
	profileRepository contracts.ProfileRepository,
	reviewUsecase contracts.ReviewUsecase,
) contracts.PractitionerUsecase {
	return &practitionerUsecase{
		Log:                    log,
		PractitionerRepository: practitionerRepository,
		ProfileRepository:      profileRepository,
		ReviewUsecase:          reviewUsecase,
	}
}

// FindAll renders a failed fetch as an empty result: the search page always
// gets a list, never an error.
func (uc *practitionerUsecase) FindAll(ctx context.Context, filters *requests.PractitionerFilters) []responses.Practitioner {
	practitionerModels, err := uc.PractitionerRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("fetch practitioners failed, degrading to empty list",
			zap.Error(err),
		)
		return []responses.Practitioner{}
	}

	filtered := FilterPractitioners(practitionerModels, filters)

	result := make([]responses.Practitioner, 0, len(filtered))
	for _, practitionerModel := range filtered {
		result = append(result, uc.buildPractitionerResponse(ctx, &practitionerModel))
	}

	uc.Log.Debug("practitioners listed",
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result
}

// FindByID returns nil for both a missing practitioner and a failed fetch;
// the profile page renders its not-found state either way.
func (uc *practitionerUsecase) FindByID(ctx context.Context, practitionerID string) *responses.PractitionerDetail {
	practitionerModel, err := uc.PractitionerRepository.FindByID(ctx, practitionerID)
	if err != nil {
		uc.Log.Error("fetch practitioner failed",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Error(err),
		)
		return nil
	}
	if practitionerModel == nil {
		return nil
	}

	practitionerReviews := uc.ReviewUsecase.FindByPractitioner(ctx, practitionerID)

	return &responses.PractitionerDetail{
		Practitioner:  uc.buildPractitionerResponse(ctx, practitionerModel),
		AverageRating: reviews.AverageRating(practitionerReviews),
		ReviewCount:   len(practitionerReviews),
		Reviews:       practitionerReviews,
	}
}

func (uc *practitionerUsecase) ListSpecialties(ctx context.Context) []string {
	return constvars.Specialties
}

func (uc *practitionerUsecase) buildPractitionerResponse(ctx context.Context, practitionerModel *models.Practitioner) responses.Practitioner {
	fullName := ""
	profile, err := uc.ProfileRepository.FindByID(ctx, practitionerModel.ProfileID)
	if err != nil {
		uc.Log.Warn("fetch practitioner profile failed",
			zap.String(constvars.LoggingProfileIDKey, practitionerModel.ProfileID),
			zap.Error(err),
		)
	} else if profile != nil {
		fullName = profile.FullName
	}

	return responses.Practitioner{
		ID:                practitionerModel.ID,
		ProfileID:         practitionerModel.ProfileID,
		FullName:          fullName,
		Specialty:         practitionerModel.Specialty,
		Credentials:       practitionerModel.Credentials,
		ConsultationTypes: practitionerModel.ConsultationTypes,
		Bio:               practitionerModel.Bio,
	}
}
