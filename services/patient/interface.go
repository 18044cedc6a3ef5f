package patient

import (
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	sequenceRepo "medicore/database/repository/sequence"
	"medicore/models"
)

// UpdateRequest carries the editable patient fields; nil fields are left
// untouched.
type UpdateRequest struct {
	Name             *string                       `json:"name,omitempty"`
	Age              *int                          `json:"age,omitempty"`
	Gender           *string                       `json:"gender,omitempty"`
	Contact          *models.ContactInfo           `json:"contact,omitempty"`
	BloodType        *string                       `json:"bloodType,omitempty"`
	EmergencyContact *models.EmergencyContact      `json:"emergencyContact,omitempty"`
	MedicalHistory   *[]models.MedicalHistoryEntry `json:"medicalHistory,omitempty"`
	Allergies        *[]models.Allergy             `json:"allergies,omitempty"`
	Medications      *[]models.Medication          `json:"medications,omitempty"`
	Insurance        *models.Insurance             `json:"insurance,omitempty"`
}

// MedicalHistoryView is the patient-profile slice of clinical data.
type MedicalHistoryView struct {
	MedicalHistory []models.MedicalHistoryEntry `json:"medicalHistory"`
	Allergies      []models.Allergy             `json:"allergies"`
	Medications    []models.Medication          `json:"medications"`
}

// PatientService manages patient profiles.
type PatientService interface {
	List(opts patientRepo.ListOptions) ([]models.Patient, int64, error)
	GetByID(id string) (*models.Patient, error)
	Create(p *models.Patient) (*models.Patient, error)
	Update(id string, req UpdateRequest) (*models.Patient, error)
	Delete(id string) error
	MedicalHistory(id string) (*MedicalHistoryView, error)
	AssignDoctor(patientID, doctorID string) (*models.Patient, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo       patientRepo.PatientRepository
	DoctorRepo doctorRepo.DoctorRepository
	Sequence   sequenceRepo.SequenceRepository
}
