package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByPractitionerID(ctx context.Context, practitionerID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}

// BookAppointmentInput is the validated, variant-independent booking request
// the usecase receives after either form passes its own gate.
type BookAppointmentInput struct {
	PractitionerID   string
	Date             string
	Time             string
	ConsultationType string
	Notes            string
}

type AppointmentUsecase interface {
	Book(ctx context.Context, sessionData string, input *BookAppointmentInput) (*responses.Appointment, error)
	GetPatientAppointments(ctx context.Context, sessionData string) (*responses.PatientAppointments, error)
	GetPractitionerAppointments(ctx context.Context, sessionData string) (*responses.PractitionerAppointments, error)
	UpdateStatus(ctx context.Context, sessionData, appointmentID, status string) (*responses.AppointmentStatusUpdate, error)
}
