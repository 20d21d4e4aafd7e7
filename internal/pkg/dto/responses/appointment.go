package responses

import "time"

type Appointment struct {
	ID                    string    `json:"id"`
	PatientID             string    `json:"patient_id"`
	PractitionerID        string    `json:"practitioner_id"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	Type                  string    `json:"type"`
	Status                string    `json:"status"`
	Notes                 string    `json:"notes,omitempty"`
	PatientName           string    `json:"patient_name,omitempty"`
	PractitionerName      string    `json:"practitioner_name"`
	PractitionerSpecialty string    `json:"practitioner_specialty"`
}

// PatientAppointments partitions the patient's list: upcoming holds future,
// non-cancelled entries; past holds everything else.
type PatientAppointments struct {
	Upcoming []Appointment `json:"upcoming"`
	Past     []Appointment `json:"past"`
}

// PractitionerAppointments buckets the practitioner's list the way the
// dashboard tabs render it. The buckets overlap on purpose.
type PractitionerAppointments struct {
	Today     []Appointment `json:"today"`
	Pending   []Appointment `json:"pending"`
	Completed []Appointment `json:"completed"`
}

type AppointmentStatusUpdate struct {
	Updated bool   `json:"updated"`
	Status  string `json:"status,omitempty"`
}
