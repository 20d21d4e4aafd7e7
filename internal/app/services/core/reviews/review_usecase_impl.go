package reviews

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type reviewUsecase struct {
	Log                    *zap.Logger
	ReviewRepository       contracts.ReviewRepository
	PractitionerRepository contracts.PractitionerRepository
	ProfileRepository      contracts.ProfileRepository
	SessionService         contracts.SessionService
}

func NewReviewUsecase(
	log *zap.Logger,
	reviewRepository contracts.ReviewRepository,
	practitionerRepository contracts.PractitionerRepository,
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
) contracts.ReviewUsecase {
	return &reviewUsecase{
		Log:                    log,
		ReviewRepository:       reviewRepository,
		PractitionerRepository: practitionerRepository,
		ProfileRepository:      profileRepository,
		SessionService:         sessionService,
	}
}

func (uc *reviewUsecase) Create(ctx context.Context, sessionData string, request *requests.CreateReview) (*responses.Review, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	practitioner, err := uc.PractitionerRepository.FindByID(ctx, request.PractitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotExist(nil)
	}

	reviewModel := &models.Review{
		PatientID:      session.UserID,
		PractitionerID: request.PractitionerID,
		Rating:         request.Rating,
		Comment:        request.Comment,
		CreatedAt:      time.Now(),
	}
	reviewID, err := uc.ReviewRepository.CreateReview(ctx, reviewModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("review created",
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
	)

	return &responses.Review{
		ID:             reviewID,
		PatientID:      session.UserID,
		PractitionerID: request.PractitionerID,
		Rating:         request.Rating,
		Comment:        request.Comment,
		CreatedAt:      reviewModel.CreatedAt,
		ReviewerName:   session.FullName,
	}, nil
}

// FindByPractitioner never fails from the caller's point of view: a broken
// fetch is logged and rendered as an empty list, the same as no reviews.
func (uc *reviewUsecase) FindByPractitioner(ctx context.Context, practitionerID string) []responses.Review {
	reviewModels, err := uc.ReviewRepository.FindByPractitionerID(ctx, practitionerID)
	if err != nil {
		uc.Log.Error("fetch reviews failed, degrading to empty list",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Error(err),
		)
		return []responses.Review{}
	}

	result := make([]responses.Review, 0, len(reviewModels))
	for _, reviewModel := range reviewModels {
		result = append(result, responses.Review{
			ID:             reviewModel.ID,
			PatientID:      reviewModel.PatientID,
			PractitionerID: reviewModel.PractitionerID,
			Rating:         reviewModel.Rating,
			Comment:        reviewModel.Comment,
			CreatedAt:      reviewModel.CreatedAt,
			ReviewerName:   uc.reviewerName(ctx, reviewModel.PatientID),
		})
	}
	return result
}

func (uc *reviewUsecase) reviewerName(ctx context.Context, patientID string) string {
	profile, err := uc.ProfileRepository.FindByID(ctx, patientID)
	if err != nil || profile == nil {
		return ""
	}
	return profile.FullName
}
