package appointmentRepo

import (
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListOptions narrows and pages appointment listings.
type ListOptions struct {
	Status    string
	DoctorID  string
	PatientID string
	Date      *time.Time // restrict to this calendar day
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique or display ID.
	GetByID(id string) (*models.Appointment, error)
	// List retrieves appointments matching the options plus a total count.
	List(opts ListOptions) ([]models.Appointment, int64, error)
	// ListForDoctorDay retrieves a doctor's calendar-blocking appointments on
	// the given day, excluding excludeID when non-empty. This is the read the
	// conflict check runs over.
	ListForDoctorDay(doctorID string, day time.Time, excludeID string) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// Update modifies an existing appointment record.
	Update(appt *models.Appointment) error
	// UpdateSetDocument applies a partial $set update by unique ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes an appointment record by its ID.
	Delete(id string) error
}
