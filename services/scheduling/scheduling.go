// Package scheduling holds the booking decision logic: whether a doctor is
// open at a given date and time, and whether a proposed appointment interval
// collides with an existing one.
package scheduling

import (
	"fmt"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
)

// ConflictChecker decides whether a proposed appointment collides with an
// existing booking on the doctor's calendar.
type ConflictChecker interface {
	// HasConflict reports whether the interval described by date, "HH:MM"
	// clock and duration overlaps any of the doctor's calendar-blocking
	// appointments on that day. excludeID, when non-empty, removes the
	// appointment being rescheduled from consideration.
	HasConflict(doctorID string, date time.Time, clock string, durationMin int, excludeID string) (bool, error)
}

// DefaultConflictChecker is the production implementation. It is a pure
// predicate over a point-in-time read of the doctor's day: the check and the
// subsequent insert are not atomic, so two simultaneous requests for the same
// window can both pass. Callers that need a hard guarantee must serialize
// writes per doctor/day.
type DefaultConflictChecker struct {
	Repo appointmentRepo.AppointmentRepository
}

// HasConflict implements ConflictChecker.
func (c *DefaultConflictChecker) HasConflict(doctorID string, date time.Time, clock string, durationMin int, excludeID string) (bool, error) {
	candStart, candEnd, ok := CandidateInterval(date, clock, durationMin)
	if !ok {
		return false, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}

	existing, err := c.Repo.ListForDoctorDay(doctorID, date, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to load doctor %s day: %w", doctorID, err)
	}

	return OverlapsAny(candStart, candEnd, existing), nil
}
