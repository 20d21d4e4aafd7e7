package models

import "time"

type Appointment struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	PatientID      string    `json:"patient_id" bson:"patientId"`
	PractitionerID string    `json:"practitioner_id" bson:"practitionerId"`
	StartTime      time.Time `json:"start_time" bson:"startTime"`
	EndTime        time.Time `json:"end_time" bson:"endTime"`
	Type           string    `json:"type" bson:"type"`
	Status         string    `json:"status" bson:"status"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel      `bson:",inline"`
}

// allowedStatusTransitions is the appointment lifecycle:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled.
// Completed and cancelled are terminal.
var allowedStatusTransitions = map[string][]string{
	"pending":   {"confirmed", "cancelled"},
	"confirmed": {"completed", "cancelled"},
}

// CanTransitionTo reports whether the lifecycle permits moving the
// appointment to the requested status.
func (a *Appointment) CanTransitionTo(status string) bool {
	for _, next := range allowedStatusTransitions[a.Status] {
		if next == status {
			return true
		}
	}
	return false
}
