package appointment

import (
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	sequenceRepo "medicore/database/repository/sequence"
	"medicore/models"
	"medicore/services/scheduling"
)

// CreateRequest carries the fields needed to book an appointment.
type CreateRequest struct {
	PatientID string    `json:"patientId" binding:"required"`
	DoctorID  string    `json:"doctorId" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Time      string    `json:"time" binding:"required"` // 24-hour "HH:MM"
	Duration  int       `json:"duration"`
	Reason    string    `json:"reason" binding:"required"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	Symptoms  []string  `json:"symptoms"`
	Priority  string    `json:"priority"`
}

// UpdateRequest carries the editable appointment fields; nil fields are left
// untouched. Changing date, time or duration re-runs the booking checks with
// the appointment itself excluded.
type UpdateRequest struct {
	Date     *time.Time `json:"date,omitempty"`
	Time     *string    `json:"time,omitempty"`
	Duration *int       `json:"duration,omitempty"`
	Reason   *string    `json:"reason,omitempty"`
	Type     *string    `json:"type,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
	Symptoms *[]string  `json:"symptoms,omitempty"`
	Priority *string    `json:"priority,omitempty"`
}

// StatusRequest changes the appointment lifecycle state.
type StatusRequest struct {
	Status             string `json:"status" binding:"required"`
	CancellationReason string `json:"cancellationReason"`
	CancelledBy        string `json:"cancelledBy"`
}

// ReminderScheduler enqueues a reminder to fire ahead of the appointment.
// Scheduling is best effort: a failed enqueue never fails the booking.
type ReminderScheduler interface {
	Schedule(appt *models.Appointment) error
	Cancel(apptID string) error
}

// AppointmentService manages the booking lifecycle.
type AppointmentService interface {
	List(opts appointmentRepo.ListOptions) ([]models.Appointment, int64, error)
	GetByID(id string) (*models.Appointment, error)
	Create(req CreateRequest) (*models.Appointment, error)
	Update(id string, req UpdateRequest) (*models.Appointment, error)
	UpdateStatus(id string, req StatusRequest) (*models.Appointment, error)
	Delete(id string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo        appointmentRepo.AppointmentRepository
	PatientRepo patientRepo.PatientRepository
	DoctorRepo  doctorRepo.DoctorRepository
	Sequence    sequenceRepo.SequenceRepository
	Conflicts   scheduling.ConflictChecker
	Reminders   ReminderScheduler
}
