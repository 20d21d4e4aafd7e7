package requests

// BookAppointment is the standalone confirmation form: the reason is
// mandatory there, unlike the practitioner-page variant.
type BookAppointment struct {
	PractitionerID   string `json:"practitioner_id" validate:"required"`
	Date             string `json:"date" validate:"required,booking_date"`
	Time             string `json:"time" validate:"required,booking_time"`
	ConsultationType string `json:"consultation_type" validate:"required,consultation_type"`
	Reason           string `json:"reason" validate:"required"`
	Notes            string `json:"notes"`
}

// BookAppointmentFromProfile is the practitioner-page booking variant where
// notes are optional and no reason field exists.
type BookAppointmentFromProfile struct {
	Date             string `json:"date" validate:"required,booking_date"`
	Time             string `json:"time" validate:"required,booking_time"`
	ConsultationType string `json:"consultation_type" validate:"required,consultation_type"`
	Notes            string `json:"notes"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
