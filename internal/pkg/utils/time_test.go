package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	startTime, err := CombineDateTime("2025-03-10", "14:00", time.UTC)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), startTime)
}

func TestCombineDateTime_RespectsLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	startTime, err := CombineDateTime("2025-03-10", "14:00", jakarta)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 0, 0, 0, jakarta), startTime)
}

func TestCombineDateTime_InvalidInput(t *testing.T) {
	testCases := []struct {
		name  string
		date  string
		clock string
	}{
		{"bad date", "10-03-2025", "14:00"},
		{"bad time", "2025-03-10", "2pm"},
		{"empty date", "", "14:00"},
		{"nonexistent day", "2025-02-30", "14:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CombineDateTime(tc.date, tc.clock, time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestAppointmentEndTime_AlwaysSixtyMinutes(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	end := AppointmentEndTime(start)

	assert.Equal(t, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Hour, end.Sub(start))
}

func TestSameCalendarDay(t *testing.T) {
	base := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), base))
	assert.False(t, SameCalendarDay(time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC), base))

	// The comparison happens in the second instant's location: these share a
	// UTC date but fall on different Jakarta dates.
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)
	lateUTC := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	earlyUTC := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	assert.False(t, SameCalendarDay(lateUTC, earlyUTC.In(jakarta)))
}
