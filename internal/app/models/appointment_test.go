package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{"pending", "confirmed", true},
		{"pending", "cancelled", true},
		{"pending", "completed", false},
		{"pending", "pending", false},
		{"confirmed", "completed", true},
		{"confirmed", "cancelled", true},
		{"confirmed", "pending", false},
		{"completed", "cancelled", false},
		{"completed", "confirmed", false},
		{"cancelled", "pending", false},
		{"cancelled", "confirmed", false},
	}

	for _, tc := range testCases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			appointment := &Appointment{Status: tc.from}
			assert.Equal(t, tc.allowed, appointment.CanTransitionTo(tc.to))
		})
	}
}

func TestPractitionerSupportsConsultationType(t *testing.T) {
	practitioner := &Practitioner{ConsultationTypes: []string{"Virtual"}}

	assert.True(t, practitioner.SupportsConsultationType("Virtual"))
	assert.False(t, practitioner.SupportsConsultationType("In-Person"))
	assert.False(t, practitioner.SupportsConsultationType(""))

	empty := &Practitioner{}
	assert.False(t, empty.SupportsConsultationType("Virtual"))
}
