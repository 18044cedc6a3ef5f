// Package appointment implements the booking lifecycle. Every create and
// reschedule runs the same gate: the doctor must be available at the
// requested date and time, and the requested interval must not overlap any
// calendar-blocking appointment of that doctor.
package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Booking errors surfaced to handlers.
var (
	ErrNotFound          = errors.New("appointment not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorUnavailable = errors.New("doctor is not available at the requested time")
	ErrTimeConflict      = errors.New("doctor already has an appointment in this time slot")
	ErrInvalidDuration   = errors.New("appointment duration out of range")
	ErrInvalidStatus     = errors.New("invalid appointment status")
)

// DefaultAppointmentDuration in minutes, applied when a booking omits one.
const DefaultAppointmentDuration = 30

// List retrieves appointments matching the options, with patient and doctor
// summaries attached.
func (s *DefaultAppointmentService) List(opts appointmentRepo.ListOptions) ([]models.Appointment, int64, error) {
	appts, total, err := s.Repo.List(opts)
	if err != nil {
		return nil, 0, err
	}
	for i := range appts {
		s.populateSummaries(&appts[i])
	}
	return appts, total, nil
}

// GetByID retrieves an appointment by unique or display ID.
func (s *DefaultAppointmentService) GetByID(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	s.populateSummaries(appt)
	return appt, nil
}

// Create books a new appointment. The patient and doctor may be referenced by
// unique or display ID; the stored record always carries the unique IDs.
func (s *DefaultAppointmentService) Create(req CreateRequest) (*models.Appointment, error) {
	patient, err := s.resolvePatient(req.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.resolveDoctor(req.DoctorID)
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration == 0 {
		duration = DefaultAppointmentDuration
	}
	if duration < models.MinAppointmentDuration || duration > models.MaxAppointmentDuration {
		return nil, ErrInvalidDuration
	}

	if err := s.checkBookable(doctor, req.Date, req.Time, duration, ""); err != nil {
		return nil, err
	}

	displayID, err := s.Sequence.Next("appointment", "A")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate appointment ID: %w", err)
	}

	apptType := req.Type
	if apptType == "" {
		apptType = models.TypeConsultation
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		AppointmentID: displayID,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      duration,
		Reason:        req.Reason,
		Status:        models.StatusScheduled,
		Type:          apptType,
		Notes:         req.Notes,
		Symptoms:      req.Symptoms,
		Priority:      req.Priority,
		Fee:           doctor.ConsultationFee,
		PaymentStatus: "pending",
	}
	if err := s.Repo.Create(appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(appt)
	s.populateSummaries(appt)
	return appt, nil
}

// Update edits an appointment. A change to date, time or duration is a
// reschedule: the booking checks re-run with this appointment excluded, so a
// slot can be nudged within its own window without colliding with itself.
func (s *DefaultAppointmentService) Update(id string, req UpdateRequest) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}

	reschedule := req.Date != nil || req.Time != nil || req.Duration != nil
	if reschedule {
		date := appt.Date
		clock := appt.Time
		duration := appt.Duration
		if req.Date != nil {
			date = *req.Date
		}
		if req.Time != nil {
			clock = *req.Time
		}
		if req.Duration != nil {
			duration = *req.Duration
		}
		if duration < models.MinAppointmentDuration || duration > models.MaxAppointmentDuration {
			return nil, ErrInvalidDuration
		}

		doctor, err := s.resolveDoctor(appt.DoctorID)
		if err != nil {
			return nil, err
		}
		if err := s.checkBookable(doctor, date, clock, duration, appt.ID); err != nil {
			return nil, err
		}
	}

	set := bson.M{}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.Time != nil {
		set["time"] = *req.Time
	}
	if req.Duration != nil {
		set["duration"] = *req.Duration
	}
	if req.Reason != nil {
		set["reason"] = *req.Reason
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.Symptoms != nil {
		set["symptoms"] = *req.Symptoms
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}
	if reschedule {
		// The old reminder fires at the wrong instant once the slot moves.
		set["reminderSent"] = false
	}

	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(appt.ID, set); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.GetByID(appt.ID)
	if err != nil {
		return nil, err
	}
	if reschedule {
		s.scheduleReminder(updated)
	}
	s.populateSummaries(updated)
	return updated, nil
}

// UpdateStatus moves an appointment through its lifecycle. Cancelling records
// who cancelled and why, and frees the slot for new bookings.
func (s *DefaultAppointmentService) UpdateStatus(id string, req StatusRequest) (*models.Appointment, error) {
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}

	set := bson.M{"status": req.Status}
	if req.Status == models.StatusCancelled {
		set["cancellationReason"] = req.CancellationReason
		set["cancelledBy"] = req.CancelledBy
		set["cancelledAt"] = time.Now()
	}
	if err := s.Repo.UpdateSetDocument(appt.ID, set); err != nil {
		return nil, err
	}

	if req.Status == models.StatusCancelled || req.Status == models.StatusNoShow {
		s.cancelReminder(appt.ID)
	}

	updated, err := s.Repo.GetByID(appt.ID)
	if err != nil {
		return nil, err
	}
	s.populateSummaries(updated)
	return updated, nil
}

// Delete removes an appointment outright. Cancellation is the normal path;
// this is the admin cleanup escape hatch.
func (s *DefaultAppointmentService) Delete(id string) error {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrNotFound
	}
	s.cancelReminder(appt.ID)
	return s.Repo.Delete(appt.ID)
}

// checkBookable runs the booking gate in order: availability first, then the
// calendar conflict scan.
func (s *DefaultAppointmentService) checkBookable(doctor *models.Doctor, date time.Time, clock string, durationMin int, excludeID string) error {
	if !doctor.IsAvailable(date, clock) {
		return ErrDoctorUnavailable
	}
	conflict, err := s.Conflicts.HasConflict(doctor.ID, date, clock, durationMin, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrTimeConflict
	}
	return nil
}

func (s *DefaultAppointmentService) resolvePatient(id string) (*models.Patient, error) {
	p, err := s.PatientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p, err = s.PatientRepo.GetByPatientID(id)
		if err != nil {
			return nil, err
		}
	}
	if p == nil || !p.IsActive {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func (s *DefaultAppointmentService) resolveDoctor(id string) (*models.Doctor, error) {
	d, err := s.DoctorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d, err = s.DoctorRepo.GetByDoctorID(id)
		if err != nil {
			return nil, err
		}
	}
	if d == nil || !d.IsActive {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

// populateSummaries attaches the patient and doctor views. Lookup failures
// only cost the summary, never the appointment itself.
func (s *DefaultAppointmentService) populateSummaries(appt *models.Appointment) {
	if p, err := s.PatientRepo.GetByID(appt.PatientID); err == nil && p != nil {
		summary := p.Summary()
		appt.Patient = &summary
	}
	if d, err := s.DoctorRepo.GetByID(appt.DoctorID); err == nil && d != nil {
		summary := d.Summary()
		appt.Doctor = &summary
	}
}

func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment) {
	if s.Reminders == nil || appt == nil {
		return
	}
	if err := s.Reminders.Schedule(appt); err != nil {
		utils.GetLogger().Warn("failed to schedule appointment reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) cancelReminder(apptID string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.Cancel(apptID); err != nil {
		utils.GetLogger().Warn("failed to cancel appointment reminder",
			zap.String("appointmentId", apptID), zap.Error(err))
	}
}
