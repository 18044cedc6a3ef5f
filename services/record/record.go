package record

import (
	"errors"
	"fmt"
	"time"

	recordRepo "medicore/database/repository/record"
	"medicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Record errors surfaced to handlers.
var (
	ErrNotFound        = errors.New("medical record not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
)

// List retrieves records matching the options, with patient and doctor
// summaries attached.
func (s *DefaultRecordService) List(opts recordRepo.ListOptions) ([]models.MedicalRecord, int64, error) {
	records, total, err := s.Repo.List(opts)
	if err != nil {
		return nil, 0, err
	}
	for i := range records {
		s.populateSummaries(&records[i])
	}
	return records, total, nil
}

// GetByID retrieves a record by its unique ID.
func (s *DefaultRecordService) GetByID(id string) (*models.MedicalRecord, error) {
	record, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	s.populateSummaries(record)
	return record, nil
}

// Create inserts a new record, minting its unique and display IDs. Patient
// and doctor may be referenced by unique or display ID.
func (s *DefaultRecordService) Create(record *models.MedicalRecord) (*models.MedicalRecord, error) {
	patient, err := s.PatientRepo.GetByID(record.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		patient, err = s.PatientRepo.GetByPatientID(record.PatientID)
		if err != nil {
			return nil, err
		}
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := s.DoctorRepo.GetByID(record.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		doctor, err = s.DoctorRepo.GetByDoctorID(record.DoctorID)
		if err != nil {
			return nil, err
		}
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	displayID, err := s.Sequence.Next("record", "MR")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate record ID: %w", err)
	}
	record.ID = uuid.New().String()
	record.RecordID = displayID
	record.PatientID = patient.ID
	record.DoctorID = doctor.ID
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	if record.Status == "" {
		record.Status = models.RecordActive
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	s.populateSummaries(record)
	return record, nil
}

// Update applies the non-nil fields of the request.
func (s *DefaultRecordService) Update(id string, req UpdateRequest) (*models.MedicalRecord, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if req.Diagnosis != nil {
		set["diagnosis"] = *req.Diagnosis
	}
	if req.Symptoms != nil {
		set["symptoms"] = *req.Symptoms
	}
	if req.VitalSigns != nil {
		set["vitalSigns"] = *req.VitalSigns
	}
	if req.Examination != nil {
		set["examination"] = *req.Examination
	}
	if req.Treatment != nil {
		set["treatment"] = *req.Treatment
	}
	if req.LabResults != nil {
		set["labResults"] = *req.LabResults
	}
	if req.Imaging != nil {
		set["imaging"] = *req.Imaging
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.FollowUp != nil {
		set["followUp"] = *req.FollowUp
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.IsConfidential != nil {
		set["isConfidential"] = *req.IsConfidential
	}

	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(existing.ID, set); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.GetByID(existing.ID)
	if err != nil {
		return nil, err
	}
	s.populateSummaries(updated)
	return updated, nil
}

// Delete removes a record by its ID.
func (s *DefaultRecordService) Delete(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(existing.ID)
}

// PatientHistory retrieves a patient's records newest first.
func (s *DefaultRecordService) PatientHistory(patientID string, limit int64) ([]models.MedicalRecord, error) {
	records, err := s.Repo.PatientHistory(patientID, limit)
	if err != nil {
		return nil, err
	}
	for i := range records {
		s.populateSummaries(&records[i])
	}
	return records, nil
}

// DoctorRecords retrieves a doctor's records newest first.
func (s *DefaultRecordService) DoctorRecords(doctorID string, limit int64) ([]models.MedicalRecord, error) {
	records, err := s.Repo.DoctorRecords(doctorID, limit)
	if err != nil {
		return nil, err
	}
	for i := range records {
		s.populateSummaries(&records[i])
	}
	return records, nil
}

// populateSummaries attaches the patient and doctor views. Lookup failures
// only cost the summary, never the record itself.
func (s *DefaultRecordService) populateSummaries(record *models.MedicalRecord) {
	if p, err := s.PatientRepo.GetByID(record.PatientID); err == nil && p != nil {
		summary := p.Summary()
		record.Patient = &summary
	}
	if d, err := s.DoctorRepo.GetByID(record.DoctorID); err == nil && d != nil {
		summary := d.Summary()
		record.Doctor = &summary
	}
}
