package utils

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"
)

// CombineDateTime turns a (YYYY-MM-DD, HH:MM) pair into an absolute instant
// in the given location.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	combined, err := time.ParseInLocation(constvars.BookingDateLayout+"T"+constvars.BookingTimeLayout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return combined, nil
}

// AppointmentEndTime applies the fixed consultation duration.
func AppointmentEndTime(start time.Time) time.Time {
	return start.Add(constvars.AppointmentDurationMinutes * time.Minute)
}

// SameCalendarDay reports whether two instants fall on the same calendar day
// once both are viewed in the second instant's location.
func SameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
