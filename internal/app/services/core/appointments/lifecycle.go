package appointments

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"time"
)

// IsUpcoming: strictly in the future and not cancelled. Everything else,
// including a cancelled appointment with a future start, counts as past.
func IsUpcoming(appointment *responses.Appointment, now time.Time) bool {
	return appointment.StartTime.After(now) && appointment.Status != constvars.AppointmentStatusCancelled
}

// PartitionPatientAppointments splits the patient's list into the two
// dashboard sections. Every appointment lands in exactly one of them.
func PartitionPatientAppointments(appointments []responses.Appointment, now time.Time) *responses.PatientAppointments {
	partitioned := &responses.PatientAppointments{
		Upcoming: []responses.Appointment{},
		Past:     []responses.Appointment{},
	}
	for _, appointment := range appointments {
		if IsUpcoming(&appointment, now) {
			partitioned.Upcoming = append(partitioned.Upcoming, appointment)
		} else {
			partitioned.Past = append(partitioned.Past, appointment)
		}
	}
	return partitioned
}

// ClassifyPractitionerAppointments buckets the practitioner's list the way
// the dashboard tabs read it. Today is calendar-day equality with now,
// regardless of status. The buckets are views, not a partition: a pending
// appointment scheduled for today shows up under both today and pending.
func ClassifyPractitionerAppointments(appointments []responses.Appointment, now time.Time) *responses.PractitionerAppointments {
	classified := &responses.PractitionerAppointments{
		Today:     []responses.Appointment{},
		Pending:   []responses.Appointment{},
		Completed: []responses.Appointment{},
	}
	for _, appointment := range appointments {
		if utils.SameCalendarDay(appointment.StartTime, now) {
			classified.Today = append(classified.Today, appointment)
		}
		switch appointment.Status {
		case constvars.AppointmentStatusPending:
			classified.Pending = append(classified.Pending, appointment)
		case constvars.AppointmentStatusCompleted:
			classified.Completed = append(classified.Completed, appointment)
		}
	}
	return classified
}
