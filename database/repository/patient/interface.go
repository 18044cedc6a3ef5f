package patientRepo

import (
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListOptions narrows and pages patient listings.
type ListOptions struct {
	Search    string // matches name, patientId (case-insensitive)
	DoctorID  string // restrict to patients assigned to this doctor
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// PatientRepository defines methods for patient profile data access.
type PatientRepository interface {
	// GetByID retrieves a patient by its unique ID.
	GetByID(id string) (*models.Patient, error)
	// GetByPatientID retrieves a patient by its display ID (e.g. "P00001").
	GetByPatientID(patientID string) (*models.Patient, error)
	// List retrieves active patients matching the options plus a total count.
	List(opts ListOptions) ([]models.Patient, int64, error)
	// Create inserts a new patient record.
	Create(patient *models.Patient) error
	// Update modifies an existing patient record.
	Update(patient *models.Patient) error
	// UpdateSetDocument applies a partial $set update by unique ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Deactivate soft-deletes a patient.
	Deactivate(id string) error
}
