package doctor

import (
	doctorRepo "medicore/database/repository/doctor"
	sequenceRepo "medicore/database/repository/sequence"
	"medicore/models"
)

// UpdateRequest carries the editable doctor fields; nil fields are left
// untouched. Availability is edited through the schedule endpoints instead.
type UpdateRequest struct {
	Name            *string                 `json:"name,omitempty"`
	Specialization  *string                 `json:"specialization,omitempty"`
	Qualifications  *[]models.Qualification `json:"qualifications,omitempty"`
	Contact         *models.ContactInfo     `json:"contact,omitempty"`
	ConsultationFee *float64                `json:"consultationFee,omitempty"`
	Experience      *models.Experience      `json:"experience,omitempty"`
	Languages       *[]string               `json:"languages,omitempty"`
}

// ScheduleView mirrors the availability aggregate for the schedule endpoints.
type ScheduleView struct {
	Schedule   []models.WeeklyScheduleEntry `json:"schedule"`
	IsOnLeave  bool                         `json:"isOnLeave"`
	LeaveDates []models.LeaveRange          `json:"leaveDates"`
}

// DoctorService manages doctor profiles and their schedules.
type DoctorService interface {
	List(opts doctorRepo.ListOptions) ([]models.Doctor, int64, error)
	GetByID(id string) (*models.Doctor, error)
	Create(d *models.Doctor) (*models.Doctor, error)
	Update(id string, req UpdateRequest) (*models.Doctor, error)
	Delete(id string) error
	GetSchedule(id string) (*ScheduleView, error)
	UpdateSchedule(id string, availability models.DoctorAvailability) (*ScheduleView, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo     doctorRepo.DoctorRepository
	Sequence sequenceRepo.SequenceRepository
}
