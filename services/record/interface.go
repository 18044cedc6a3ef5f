package record

import (
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	recordRepo "medicore/database/repository/record"
	sequenceRepo "medicore/database/repository/sequence"
	"medicore/models"
)

// UpdateRequest carries the editable record fields; nil fields are left
// untouched.
type UpdateRequest struct {
	Diagnosis      *models.Diagnosis   `json:"diagnosis,omitempty"`
	Symptoms       *[]models.Symptom   `json:"symptoms,omitempty"`
	VitalSigns     *models.VitalSigns  `json:"vitalSigns,omitempty"`
	Examination    *models.Examination `json:"examination,omitempty"`
	Treatment      *models.Treatment   `json:"treatment,omitempty"`
	LabResults     *[]models.LabResult `json:"labResults,omitempty"`
	Imaging        *[]models.Imaging   `json:"imaging,omitempty"`
	Notes          *models.SOAPNotes   `json:"notes,omitempty"`
	FollowUp       *models.FollowUp    `json:"followUp,omitempty"`
	Status         *string             `json:"status,omitempty"`
	IsConfidential *bool               `json:"isConfidential,omitempty"`
}

// RecordService manages clinical documentation.
type RecordService interface {
	List(opts recordRepo.ListOptions) ([]models.MedicalRecord, int64, error)
	GetByID(id string) (*models.MedicalRecord, error)
	Create(record *models.MedicalRecord) (*models.MedicalRecord, error)
	Update(id string, req UpdateRequest) (*models.MedicalRecord, error)
	Delete(id string) error
	PatientHistory(patientID string, limit int64) ([]models.MedicalRecord, error)
	DoctorRecords(doctorID string, limit int64) ([]models.MedicalRecord, error)
}

// DefaultRecordService is the production implementation.
type DefaultRecordService struct {
	Repo        recordRepo.RecordRepository
	PatientRepo patientRepo.PatientRepository
	DoctorRepo  doctorRepo.DoctorRepository
	Sequence    sequenceRepo.SequenceRepository
}
