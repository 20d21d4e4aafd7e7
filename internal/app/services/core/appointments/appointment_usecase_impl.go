package appointments

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const bookingLimiterGroup = "booking"

type appointmentUsecase struct {
	Log                    *zap.Logger
	AppointmentRepository  contracts.AppointmentRepository
	PractitionerRepository contracts.PractitionerRepository
	ProfileRepository      contracts.ProfileRepository
	SessionService         contracts.SessionService
	ResourceLimiter        *ratelimiter.ResourceLimiter
	InternalConfig         *config.InternalConfig
	Location               *time.Location
}

func NewAppointmentUsecase(
	log *zap.Logger,
	appointmentRepository contracts.AppointmentRepository,
	practitionerRepository contracts.PractitionerRepository,
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) contracts.AppointmentUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		location = time.UTC
	}
	return &appointmentUsecase{
		Log:                    log,
		AppointmentRepository:  appointmentRepository,
		PractitionerRepository: practitionerRepository,
		ProfileRepository:      profileRepository,
		SessionService:         sessionService,
		ResourceLimiter:        resourceLimiter,
		InternalConfig:         internalConfig,
		Location:               location,
	}
}

func (uc *appointmentUsecase) Book(ctx context.Context, sessionData string, input *contracts.BookAppointmentInput) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	limiterResult, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      session.UserID,
		LimiterGroupName:  bookingLimiterGroup,
		WindowDurationSec: uc.InternalConfig.App.BookingWindowSec,
		MaxQuota:          uc.InternalConfig.App.BookingMaxPerWindow,
	})
	if err != nil {
		return nil, err
	}
	if !limiterResult.Allowed {
		return nil, exceptions.ErrBookingQuotaExceeded(nil)
	}

	practitioner, err := uc.PractitionerRepository.FindByID(ctx, input.PractitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotExist(nil)
	}
	if !practitioner.SupportsConsultationType(input.ConsultationType) {
		return nil, exceptions.ErrUnsupportedConsultationType(nil)
	}

	startTime, err := utils.CombineDateTime(input.Date, input.Time, uc.Location)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appointmentModel := &models.Appointment{
		PatientID:      session.UserID,
		PractitionerID: input.PractitionerID,
		StartTime:      startTime,
		EndTime:        utils.AppointmentEndTime(startTime),
		Type:           input.ConsultationType,
		Status:         constvars.AppointmentStatusPending,
		Notes:          input.Notes,
	}
	appointmentModel.CreatedAt = now
	appointmentModel.UpdatedAt = now

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		return nil, err
	}
	appointmentModel.ID = appointmentID

	uc.Log.Info("appointment booked",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
		zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
	)

	response := uc.buildAppointmentResponse(ctx, appointmentModel)
	return &response, nil
}

// GetPatientAppointments renders a broken fetch as two empty sections; the
// dashboard never errors out on a list read.
func (uc *appointmentUsecase) GetPatientAppointments(ctx context.Context, sessionData string) (*responses.PatientAppointments, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointmentModels, err := uc.AppointmentRepository.FindByPatientID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("fetch patient appointments failed, degrading to empty lists",
			zap.String(constvars.LoggingPatientIDKey, session.UserID),
			zap.Error(err),
		)
		appointmentModels = nil
	}

	return PartitionPatientAppointments(uc.buildAppointmentResponses(ctx, appointmentModels), time.Now()), nil
}

func (uc *appointmentUsecase) GetPractitionerAppointments(ctx context.Context, sessionData string) (*responses.PractitionerAppointments, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPractitioner() || session.PractitionerID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	appointmentModels, err := uc.AppointmentRepository.FindByPractitionerID(ctx, session.PractitionerID)
	if err != nil {
		uc.Log.Error("fetch practitioner appointments failed, degrading to empty lists",
			zap.String(constvars.LoggingPractitionerIDKey, session.PractitionerID),
			zap.Error(err),
		)
		appointmentModels = nil
	}

	return ClassifyPractitionerAppointments(uc.buildAppointmentResponses(ctx, appointmentModels), time.Now().In(uc.Location)), nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, sessionData, appointmentID, status string) (*responses.AppointmentStatusUpdate, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	if !uc.canManage(session, appointment, status) {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	if !appointment.CanTransitionTo(status) {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, err
	}

	uc.Log.Info("appointment status updated",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	return &responses.AppointmentStatusUpdate{Updated: true, Status: status}, nil
}

// canManage: the owning practitioner drives the lifecycle; the booking
// patient may only cancel their own appointment.
func (uc *appointmentUsecase) canManage(session *models.Session, appointment *models.Appointment, status string) bool {
	if session.IsPractitioner() && session.PractitionerID == appointment.PractitionerID {
		return true
	}
	if session.IsPatient() && session.UserID == appointment.PatientID {
		return status == constvars.AppointmentStatusCancelled
	}
	return false
}

func (uc *appointmentUsecase) buildAppointmentResponses(ctx context.Context, appointmentModels []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointmentModels))
	for _, appointmentModel := range appointmentModels {
		result = append(result, uc.buildAppointmentResponse(ctx, &appointmentModel))
	}
	return result
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointmentModel *models.Appointment) responses.Appointment {
	response := responses.Appointment{
		ID:             appointmentModel.ID,
		PatientID:      appointmentModel.PatientID,
		PractitionerID: appointmentModel.PractitionerID,
		StartTime:      appointmentModel.StartTime,
		EndTime:        appointmentModel.EndTime,
		Type:           appointmentModel.Type,
		Status:         appointmentModel.Status,
		Notes:          appointmentModel.Notes,
		PatientName:    uc.profileName(ctx, appointmentModel.PatientID),
	}

	practitioner, err := uc.PractitionerRepository.FindByID(ctx, appointmentModel.PractitionerID)
	if err != nil || practitioner == nil {
		return response
	}
	response.PractitionerSpecialty = practitioner.Specialty
	response.PractitionerName = uc.profileName(ctx, practitioner.ProfileID)
	return response
}

func (uc *appointmentUsecase) profileName(ctx context.Context, profileID string) string {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil || profile == nil {
		return ""
	}
	return profile.FullName
}
