package models

import "time"

// EmergencyContact identifies who to call on a patient's behalf.
type EmergencyContact struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// MedicalHistoryEntry is a past condition recorded directly on the patient.
type MedicalHistoryEntry struct {
	Condition string    `bson:"condition,omitempty" json:"condition,omitempty"`
	Diagnosis string    `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Treatment string    `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Date      time.Time `bson:"date,omitempty" json:"date,omitempty"`
	DoctorID  string    `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
}

// Allergy severity levels reuse the mild/moderate/severe scale.
type Allergy struct {
	Allergen string `bson:"allergen" json:"allergen"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Medication is an ongoing prescription on the patient profile.
type Medication struct {
	Name         string    `bson:"name" json:"name"`
	Dosage       string    `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Frequency    string    `bson:"frequency,omitempty" json:"frequency,omitempty"`
	StartDate    time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	PrescribedBy string    `bson:"prescribedBy,omitempty" json:"prescribedBy,omitempty"`
}

// Insurance carries the patient's coverage details.
type Insurance struct {
	Provider     string    `bson:"provider,omitempty" json:"provider,omitempty"`
	PolicyNumber string    `bson:"policyNumber,omitempty" json:"policyNumber,omitempty"`
	GroupNumber  string    `bson:"groupNumber,omitempty" json:"groupNumber,omitempty"`
	ExpiryDate   time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
}

// Patient is the full patient profile document.
type Patient struct {
	ID               string                `bson:"id" json:"id"`
	PatientID        string                `bson:"patientId" json:"patientId"`
	Name             string                `bson:"name" json:"name"`
	Age              int                   `bson:"age" json:"age"`
	Gender           string                `bson:"gender" json:"gender"`
	Contact          ContactInfo           `bson:"contact" json:"contact"`
	BloodType        string                `bson:"bloodType" json:"bloodType"`
	EmergencyContact EmergencyContact      `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	Allergies        []Allergy             `bson:"allergies,omitempty" json:"allergies,omitempty"`
	Medications      []Medication          `bson:"medications,omitempty" json:"medications,omitempty"`
	Insurance        Insurance             `bson:"insurance,omitempty" json:"insurance,omitempty"`
	IsActive         bool                  `bson:"isActive" json:"isActive"`
	AssignedDoctor   string                `bson:"assignedDoctor,omitempty" json:"assignedDoctor,omitempty"`
	CreatedAt        time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// PatientSummary is the trimmed view embedded in appointment and record
// responses.
type PatientSummary struct {
	ID        string `bson:"id" json:"id"`
	PatientID string `bson:"patientId" json:"patientId"`
	Name      string `bson:"name" json:"name"`
	Age       int    `bson:"age" json:"age"`
	Gender    string `bson:"gender" json:"gender"`
}

// Summary returns the trimmed view of the patient.
func (p *Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:        p.ID,
		PatientID: p.PatientID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
	}
}
