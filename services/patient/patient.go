package patient

import (
	"errors"
	"fmt"

	patientRepo "medicore/database/repository/patient"
	"medicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no patient matches the given ID.
var ErrNotFound = errors.New("patient not found")

// List retrieves active patients plus a total count.
func (s *DefaultPatientService) List(opts patientRepo.ListOptions) ([]models.Patient, int64, error) {
	return s.Repo.List(opts)
}

// GetByID retrieves a patient by unique or display ID.
func (s *DefaultPatientService) GetByID(id string) (*models.Patient, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		// Fall back to the display ID the front end shows.
		p, err = s.Repo.GetByPatientID(id)
		if err != nil {
			return nil, err
		}
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create inserts a new patient, minting its unique and display IDs.
func (s *DefaultPatientService) Create(p *models.Patient) (*models.Patient, error) {
	displayID, err := s.Sequence.Next("patient", "P")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate patient ID: %w", err)
	}
	p.ID = uuid.New().String()
	p.PatientID = displayID
	p.IsActive = true

	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies the non-nil fields of the request.
func (s *DefaultPatientService) Update(id string, req UpdateRequest) (*models.Patient, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.Gender != nil {
		set["gender"] = *req.Gender
	}
	if req.Contact != nil {
		set["contact"] = *req.Contact
	}
	if req.BloodType != nil {
		set["bloodType"] = *req.BloodType
	}
	if req.EmergencyContact != nil {
		set["emergencyContact"] = *req.EmergencyContact
	}
	if req.MedicalHistory != nil {
		set["medicalHistory"] = *req.MedicalHistory
	}
	if req.Allergies != nil {
		set["allergies"] = *req.Allergies
	}
	if req.Medications != nil {
		set["medications"] = *req.Medications
	}
	if req.Insurance != nil {
		set["insurance"] = *req.Insurance
	}

	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(existing.ID, set); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(existing.ID)
}

// Delete soft-deletes a patient.
func (s *DefaultPatientService) Delete(id string) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.Repo.Deactivate(existing.ID)
}

// MedicalHistory returns the patient-profile slice of clinical data.
func (s *DefaultPatientService) MedicalHistory(id string) (*MedicalHistoryView, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &MedicalHistoryView{
		MedicalHistory: p.MedicalHistory,
		Allergies:      p.Allergies,
		Medications:    p.Medications,
	}, nil
}

// AssignDoctor links a patient with a doctor, maintaining both sides of the
// relation.
func (s *DefaultPatientService) AssignDoctor(patientID, doctorID string) (*models.Patient, error) {
	p, err := s.GetByID(patientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("doctor %s not found", doctorID)
	}

	if err := s.Repo.UpdateSetDocument(p.ID, bson.M{"assignedDoctor": doctor.ID}); err != nil {
		return nil, err
	}
	if err := s.DoctorRepo.AddAssignedPatient(doctor.ID, p.ID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(p.ID)
}
