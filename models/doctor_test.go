package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// monday is 2024-06-10; saturday is 2024-06-15.
var (
	monday   = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
)

func weekdayDoctor() *Doctor {
	return &Doctor{
		ID: "doc-1",
		Availability: DoctorAvailability{
			Schedule: []WeeklyScheduleEntry{
				{Day: "monday", StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
				{Day: "tuesday", StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
				{Day: "saturday", StartTime: "09:00", EndTime: "13:00", IsAvailable: false},
			},
		},
	}
}

func TestIsAvailableTimeBoundariesInclusive(t *testing.T) {
	d := weekdayDoctor()

	assert.True(t, d.IsAvailable(monday, "09:00"), "opening boundary counts as available")
	assert.True(t, d.IsAvailable(monday, "17:00"), "closing boundary counts as available")
	assert.True(t, d.IsAvailable(monday, "12:30"))
	assert.False(t, d.IsAvailable(monday, "08:59"))
	assert.False(t, d.IsAvailable(monday, "17:01"))
}

func TestIsAvailableDayOff(t *testing.T) {
	d := weekdayDoctor()

	// Saturday entry exists but is flagged unavailable.
	assert.False(t, d.IsAvailable(saturday, "10:00"))

	// Sunday has no entry at all.
	sunday := saturday.AddDate(0, 0, 1)
	assert.False(t, d.IsAvailable(sunday, "10:00"))
}

func TestIsAvailableLeaveRangeInclusive(t *testing.T) {
	d := weekdayDoctor()
	d.Availability.LeaveDates = []LeaveRange{
		{
			StartDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
			Reason:    "conference",
		},
	}

	// Both boundary dates of the range are off.
	assert.False(t, d.IsAvailable(monday, "10:00"))
	tuesday := monday.AddDate(0, 0, 1)
	assert.False(t, d.IsAvailable(tuesday, "10:00"))

	// The leave boolean may still be false; the range alone suffices.
	assert.False(t, d.Availability.IsOnLeave)
}

func TestIsAvailableManualLeaveOverride(t *testing.T) {
	d := weekdayDoctor()
	d.Availability.IsOnLeave = true

	assert.False(t, d.IsAvailable(monday, "10:00"),
		"manual on-leave flag blocks bookings with no leave range set")
}

func TestIsAvailableFailsClosed(t *testing.T) {
	// No schedule at all.
	empty := &Doctor{}
	assert.False(t, empty.IsAvailable(monday, "10:00"))

	// Malformed schedule times.
	broken := &Doctor{
		Availability: DoctorAvailability{
			Schedule: []WeeklyScheduleEntry{
				{Day: "monday", StartTime: "nine", EndTime: "17:00", IsAvailable: true},
			},
		},
	}
	assert.False(t, broken.IsAvailable(monday, "10:00"))

	// Malformed requested time.
	assert.False(t, weekdayDoctor().IsAvailable(monday, "10am"))
}

func TestWeekdayToken(t *testing.T) {
	assert.Equal(t, "monday", WeekdayToken(monday))
	assert.Equal(t, "saturday", WeekdayToken(saturday))
	assert.Equal(t, "sunday", WeekdayToken(saturday.AddDate(0, 0, 1)))
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:30", 0, false},
		{"09-30", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := MinuteOfDay(tt.clock)
		assert.Equal(t, tt.ok, ok, tt.clock)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.clock)
		}
	}
}
