package models

import "time"

// Medical record statuses.
const (
	RecordActive   = "active"
	RecordResolved = "resolved"
	RecordChronic  = "chronic"
	RecordFollowUp = "follow-up"
)

// Diagnosis groups the primary finding with secondary codes.
type Diagnosis struct {
	Primary   string   `bson:"primary" json:"primary"`
	Secondary []string `bson:"secondary,omitempty" json:"secondary,omitempty"`
	ICD10Code string   `bson:"icd10Code,omitempty" json:"icd10Code,omitempty"`
}

// Symptom records one presenting symptom with severity and duration.
type Symptom struct {
	Symptom  string `bson:"symptom" json:"symptom"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

// BloodPressure in mmHg.
type BloodPressure struct {
	Systolic  int `bson:"systolic,omitempty" json:"systolic,omitempty"`
	Diastolic int `bson:"diastolic,omitempty" json:"diastolic,omitempty"`
}

// VitalSigns captured during the encounter.
type VitalSigns struct {
	BloodPressure    BloodPressure `bson:"bloodPressure,omitempty" json:"bloodPressure,omitempty"`
	HeartRate        int           `bson:"heartRate,omitempty" json:"heartRate,omitempty"`
	Temperature      float64       `bson:"temperature,omitempty" json:"temperature,omitempty"`
	RespiratoryRate  int           `bson:"respiratoryRate,omitempty" json:"respiratoryRate,omitempty"`
	OxygenSaturation float64       `bson:"oxygenSaturation,omitempty" json:"oxygenSaturation,omitempty"`
	Weight           float64       `bson:"weight,omitempty" json:"weight,omitempty"`
	Height           float64       `bson:"height,omitempty" json:"height,omitempty"`
}

// Examination findings by body system.
type Examination struct {
	General          string `bson:"general,omitempty" json:"general,omitempty"`
	Cardiovascular   string `bson:"cardiovascular,omitempty" json:"cardiovascular,omitempty"`
	Respiratory      string `bson:"respiratory,omitempty" json:"respiratory,omitempty"`
	Gastrointestinal string `bson:"gastrointestinal,omitempty" json:"gastrointestinal,omitempty"`
	Neurological     string `bson:"neurological,omitempty" json:"neurological,omitempty"`
	Musculoskeletal  string `bson:"musculoskeletal,omitempty" json:"musculoskeletal,omitempty"`
	Skin             string `bson:"skin,omitempty" json:"skin,omitempty"`
}

// PrescribedMedication is one line of the treatment plan.
type PrescribedMedication struct {
	Name         string `bson:"name" json:"name"`
	Dosage       string `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Frequency    string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Duration     string `bson:"duration,omitempty" json:"duration,omitempty"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Procedure performed or ordered during the encounter.
type Procedure struct {
	Name  string    `bson:"name" json:"name"`
	Date  time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Notes string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Treatment groups medications, procedures and recommendations.
type Treatment struct {
	Medications     []PrescribedMedication `bson:"medications,omitempty" json:"medications,omitempty"`
	Procedures      []Procedure            `bson:"procedures,omitempty" json:"procedures,omitempty"`
	Recommendations []string               `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
}

// LabResult reported by a lab.
type LabResult struct {
	TestName    string    `bson:"testName" json:"testName"`
	Result      string    `bson:"result,omitempty" json:"result,omitempty"`
	NormalRange string    `bson:"normalRange,omitempty" json:"normalRange,omitempty"`
	Date        time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Lab         string    `bson:"lab,omitempty" json:"lab,omitempty"`
}

// Imaging study attached to the record.
type Imaging struct {
	Type        string    `bson:"type" json:"type"`
	Date        time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Findings    string    `bson:"findings,omitempty" json:"findings,omitempty"`
	Radiologist string    `bson:"radiologist,omitempty" json:"radiologist,omitempty"`
}

// SOAPNotes hold the structured clinical narrative.
type SOAPNotes struct {
	Subjective string `bson:"subjective,omitempty" json:"subjective,omitempty"`
	Objective  string `bson:"objective,omitempty" json:"objective,omitempty"`
	Assessment string `bson:"assessment,omitempty" json:"assessment,omitempty"`
	Plan       string `bson:"plan,omitempty" json:"plan,omitempty"`
}

// FollowUp marks whether the encounter requires a return visit.
type FollowUp struct {
	Required bool      `bson:"required" json:"required"`
	Date     time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Reason   string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// MedicalRecord is one clinical encounter document.
type MedicalRecord struct {
	ID             string      `bson:"id" json:"id"`
	RecordID       string      `bson:"recordId" json:"recordId"`
	PatientID      string      `bson:"patientId" json:"patientId"`
	DoctorID       string      `bson:"doctorId" json:"doctorId"`
	AppointmentID  string      `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Date           time.Time   `bson:"date" json:"date"`
	Diagnosis      Diagnosis   `bson:"diagnosis" json:"diagnosis"`
	Symptoms       []Symptom   `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	VitalSigns     VitalSigns  `bson:"vitalSigns,omitempty" json:"vitalSigns,omitempty"`
	Examination    Examination `bson:"examination,omitempty" json:"examination,omitempty"`
	Treatment      Treatment   `bson:"treatment,omitempty" json:"treatment,omitempty"`
	LabResults     []LabResult `bson:"labResults,omitempty" json:"labResults,omitempty"`
	Imaging        []Imaging   `bson:"imaging,omitempty" json:"imaging,omitempty"`
	Notes          SOAPNotes   `bson:"notes,omitempty" json:"notes,omitempty"`
	FollowUp       FollowUp    `bson:"followUp,omitempty" json:"followUp,omitempty"`
	Status         string      `bson:"status" json:"status"`
	IsConfidential bool        `bson:"isConfidential" json:"isConfidential"`
	CreatedAt      time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time   `bson:"updatedAt" json:"updatedAt"`

	// Denormalized summaries populated on reads.
	Patient *PatientSummary `bson:"-" json:"patient,omitempty"`
	Doctor  *DoctorSummary  `bson:"-" json:"doctor,omitempty"`
}
