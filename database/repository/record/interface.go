package recordRepo

import (
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListOptions narrows and pages medical record listings.
type ListOptions struct {
	PatientID string
	DoctorID  string
	Page      int64
	Limit     int64
}

// RecordRepository defines methods for medical record data access.
type RecordRepository interface {
	// GetByID retrieves a record by its unique ID.
	GetByID(id string) (*models.MedicalRecord, error)
	// List retrieves records matching the options plus a total count,
	// newest first.
	List(opts ListOptions) ([]models.MedicalRecord, int64, error)
	// PatientHistory retrieves a patient's records newest first, capped at limit.
	PatientHistory(patientID string, limit int64) ([]models.MedicalRecord, error)
	// DoctorRecords retrieves a doctor's records newest first, capped at limit.
	DoctorRecords(doctorID string, limit int64) ([]models.MedicalRecord, error)
	// Create inserts a new record.
	Create(record *models.MedicalRecord) error
	// Update modifies an existing record.
	Update(record *models.MedicalRecord) error
	// UpdateSetDocument applies a partial $set update by unique ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a record by its ID.
	Delete(id string) error
}
