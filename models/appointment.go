package models

import "time"

// Appointment statuses.
const (
	StatusScheduled  = "scheduled"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no-show"
)

// Appointment types.
const (
	TypeConsultation = "consultation"
	TypeFollowUp     = "follow-up"
	TypeEmergency    = "emergency"
	TypeRoutine      = "routine"
	TypeSpecialist   = "specialist"
)

// Duration bounds in minutes for a single appointment.
const (
	MinAppointmentDuration = 15
	MaxAppointmentDuration = 120
)

// InactiveStatuses lists the statuses that free up the doctor's calendar.
var InactiveStatuses = []string{StatusCancelled, StatusNoShow}

// ValidStatus reports whether the given status is part of the lifecycle.
func ValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment is a booking of a patient with a doctor.
type Appointment struct {
	ID                 string    `bson:"id" json:"id"`
	AppointmentID      string    `bson:"appointmentId" json:"appointmentId"`
	PatientID          string    `bson:"patientId" json:"patientId"`
	DoctorID           string    `bson:"doctorId" json:"doctorId"`
	Date               time.Time `bson:"date" json:"date"`
	Time               string    `bson:"time" json:"time"` // 24-hour "HH:MM"
	Duration           int       `bson:"duration" json:"duration"`
	Reason             string    `bson:"reason" json:"reason"`
	Status             string    `bson:"status" json:"status"`
	Type               string    `bson:"type" json:"type"`
	Notes              string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Symptoms           []string  `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Priority           string    `bson:"priority,omitempty" json:"priority,omitempty"`
	Fee                float64   `bson:"fee" json:"fee"`
	PaymentStatus      string    `bson:"paymentStatus" json:"paymentStatus"`
	ReminderSent       bool      `bson:"reminderSent" json:"reminderSent"`
	CancellationReason string    `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancelledBy        string    `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	CancelledAt        time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`

	// Denormalized summaries populated on reads.
	Patient *PatientSummary `bson:"-" json:"patient,omitempty"`
	Doctor  *DoctorSummary  `bson:"-" json:"doctor,omitempty"`
}

// Interval computes the appointment's concrete start and end instants from
// its date, "HH:MM" time and duration. The third return is false when the
// stored time does not parse; such appointments never collide with anything.
func (a *Appointment) Interval() (time.Time, time.Time, bool) {
	m, ok := MinuteOfDay(a.Time)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start := DateOnly(a.Date).Add(time.Duration(m) * time.Minute)
	end := start.Add(time.Duration(a.Duration) * time.Minute)
	return start, end, true
}

// Blocking reports whether the appointment still occupies its slot on the
// doctor's calendar.
func (a *Appointment) Blocking() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}
