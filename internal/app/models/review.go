package models

import "time"

// Review is written once by a patient and never edited.
type Review struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	PatientID      string    `json:"patient_id" bson:"patientId"`
	PractitionerID string    `json:"practitioner_id" bson:"practitionerId"`
	Rating         int       `json:"rating" bson:"rating"`
	Comment        string    `json:"comment" bson:"comment"`
	CreatedAt      time.Time `json:"created_at" bson:"createdAt"`
}
