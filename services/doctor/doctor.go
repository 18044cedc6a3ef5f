package doctor

import (
	"errors"
	"fmt"
	"strings"

	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no doctor matches the given ID.
var ErrNotFound = errors.New("doctor not found")

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// List retrieves active doctors plus a total count.
func (s *DefaultDoctorService) List(opts doctorRepo.ListOptions) ([]models.Doctor, int64, error) {
	return s.Repo.List(opts)
}

// GetByID retrieves a doctor by unique or display ID.
func (s *DefaultDoctorService) GetByID(id string) (*models.Doctor, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d, err = s.Repo.GetByDoctorID(id)
		if err != nil {
			return nil, err
		}
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// Create inserts a new doctor, minting its unique and display IDs.
func (s *DefaultDoctorService) Create(d *models.Doctor) (*models.Doctor, error) {
	normalizeAvailability(&d.Availability)
	if err := validateAvailability(d.Availability); err != nil {
		return nil, err
	}

	displayID, err := s.Sequence.Next("doctor", "D")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate doctor ID: %w", err)
	}
	d.ID = uuid.New().String()
	d.DoctorID = displayID
	d.IsActive = true

	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies the non-nil fields of the request.
func (s *DefaultDoctorService) Update(id string, req UpdateRequest) (*models.Doctor, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Specialization != nil {
		set["specialization"] = *req.Specialization
	}
	if req.Qualifications != nil {
		set["qualifications"] = *req.Qualifications
	}
	if req.Contact != nil {
		set["contact"] = *req.Contact
	}
	if req.ConsultationFee != nil {
		set["consultationFee"] = *req.ConsultationFee
	}
	if req.Experience != nil {
		set["experience"] = *req.Experience
	}
	if req.Languages != nil {
		set["languages"] = *req.Languages
	}

	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(existing.ID, set); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(existing.ID)
}

// Delete soft-deletes a doctor.
func (s *DefaultDoctorService) Delete(id string) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.Repo.Deactivate(existing.ID)
}

// GetSchedule returns the doctor's availability aggregate.
func (s *DefaultDoctorService) GetSchedule(id string) (*ScheduleView, error) {
	d, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &ScheduleView{
		Schedule:   d.Availability.Schedule,
		IsOnLeave:  d.Availability.IsOnLeave,
		LeaveDates: d.Availability.LeaveDates,
	}, nil
}

// UpdateSchedule replaces the doctor's availability aggregate.
func (s *DefaultDoctorService) UpdateSchedule(id string, availability models.DoctorAvailability) (*ScheduleView, error) {
	d, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	normalizeAvailability(&availability)
	if err := validateAvailability(availability); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateAvailability(d.ID, availability); err != nil {
		return nil, err
	}
	return s.GetSchedule(d.ID)
}

// normalizeAvailability lowercases schedule day names in place. The
// availability evaluator matches weekday tokens exactly, so an entry stored
// as "Monday" would never take effect.
func normalizeAvailability(a *models.DoctorAvailability) {
	for i := range a.Schedule {
		a.Schedule[i].Day = strings.ToLower(a.Schedule[i].Day)
	}
}

// validateAvailability rejects schedule entries the booking checks could
// never satisfy.
func validateAvailability(a models.DoctorAvailability) error {
	for _, entry := range a.Schedule {
		if !validDays[entry.Day] {
			return fmt.Errorf("invalid schedule day %q", entry.Day)
		}
		start, okStart := models.MinuteOfDay(entry.StartTime)
		end, okEnd := models.MinuteOfDay(entry.EndTime)
		if !okStart || !okEnd {
			return fmt.Errorf("invalid schedule times %q-%q for %s", entry.StartTime, entry.EndTime, entry.Day)
		}
		if end < start {
			return fmt.Errorf("schedule for %s ends before it starts", entry.Day)
		}
	}
	for _, leave := range a.LeaveDates {
		if leave.EndDate.Before(leave.StartDate) {
			return fmt.Errorf("leave range ends before it starts")
		}
	}
	return nil
}
