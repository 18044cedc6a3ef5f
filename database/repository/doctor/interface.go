package doctorRepo

import (
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListOptions narrows and pages doctor listings.
type ListOptions struct {
	Search         string // matches name, doctorId, specialization (case-insensitive)
	Specialization string
	Page           int64
	Limit          int64
	SortBy         string
	SortOrder      string // "asc" or "desc"
}

// DoctorRepository defines methods for doctor profile data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetByDoctorID retrieves a doctor by its display ID (e.g. "D00001").
	GetByDoctorID(doctorID string) (*models.Doctor, error)
	// List retrieves active doctors matching the options plus a total count.
	List(opts ListOptions) ([]models.Doctor, int64, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// Update modifies an existing doctor record.
	Update(doctor *models.Doctor) error
	// UpdateSetDocument applies a partial $set update by unique ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// UpdateAvailability replaces the doctor's availability aggregate.
	UpdateAvailability(id string, availability models.DoctorAvailability) error
	// AddAssignedPatient links a patient to the doctor's panel.
	AddAssignedPatient(id, patientID string) error
	// Deactivate soft-deletes a doctor.
	Deactivate(id string) error
}
