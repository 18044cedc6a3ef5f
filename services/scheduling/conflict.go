package scheduling

import (
	"time"

	"medicore/models"
)

// CandidateInterval computes the proposed booking's start and end instants
// from a calendar date, a 24-hour "HH:MM" clock string and a duration in
// minutes. The third return is false when the clock string does not parse.
func CandidateInterval(date time.Time, clock string, durationMin int) (time.Time, time.Time, bool) {
	m, ok := models.MinuteOfDay(clock)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start := models.DateOnly(date).Add(time.Duration(m) * time.Minute)
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return start, end, true
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not count, so back-to-back
// bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsAny reports whether the candidate interval collides with any of the
// given appointments. Appointments whose stored time does not parse are
// skipped rather than treated as collisions.
func OverlapsAny(candStart, candEnd time.Time, existing []models.Appointment) bool {
	for i := range existing {
		exStart, exEnd, ok := existing[i].Interval()
		if !ok {
			continue
		}
		if Overlaps(candStart, candEnd, exStart, exEnd) {
			return true
		}
	}
	return false
}
