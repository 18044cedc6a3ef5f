// Command seed wipes the configured database and loads a small demo
// dataset: login accounts for each role, two doctors with weekly schedules,
// two patients, an upcoming appointment each and one medical record.
package main

import (
	"context"
	"log"
	"time"

	"medicore/config"
	"medicore/database"
	appointmentRepoPkg "medicore/database/repository/appointment"
	doctorRepoPkg "medicore/database/repository/doctor"
	patientRepoPkg "medicore/database/repository/patient"
	recordRepoPkg "medicore/database/repository/record"
	sequenceRepoPkg "medicore/database/repository/sequence"
	userRepoPkg "medicore/database/repository/user"
	"medicore/models"
	"medicore/services/appointment"
	"medicore/services/auth"
	"medicore/services/doctor"
	"medicore/services/patient"
	"medicore/services/record"
	"medicore/services/scheduling"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	wipeCollections()

	userRepo := userRepoPkg.NewMongoUserRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	recRepo := recordRepoPkg.NewMongoRecordRepo()
	seqRepo := sequenceRepoPkg.NewMongoSequenceRepo()

	authService := &auth.DefaultAuthService{Repo: userRepo}
	patientService := &patient.DefaultPatientService{Repo: patientRepo, DoctorRepo: doctorRepo, Sequence: seqRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo, Sequence: seqRepo}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:        apptRepo,
		PatientRepo: patientRepo,
		DoctorRepo:  doctorRepo,
		Sequence:    seqRepo,
		Conflicts:   &scheduling.DefaultConflictChecker{Repo: apptRepo},
	}
	recordService := &record.DefaultRecordService{Repo: recRepo, PatientRepo: patientRepo, DoctorRepo: doctorRepo, Sequence: seqRepo}

	doctors := seedDoctors(doctorService)
	patients := seedPatients(patientService, doctors)
	seedUsers(authService)
	seedAppointments(appointmentService, patients, doctors)
	seedRecords(recordService, patients, doctors)

	log.Println("Seeding complete")
}

func wipeCollections() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"users", "patients", "doctors", "appointments", "medical_records", "counters"} {
		if err := database.DB().Collection(name).Drop(ctx); err != nil {
			log.Fatalf("failed to drop %s: %v", name, err)
		}
	}
	log.Println("Cleared existing data")
}

func weekdays(start, end string) []models.WeeklyScheduleEntry {
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	schedule := make([]models.WeeklyScheduleEntry, 0, len(days))
	for _, day := range days {
		schedule = append(schedule, models.WeeklyScheduleEntry{
			Day: day, StartTime: start, EndTime: end, IsAvailable: true,
		})
	}
	return schedule
}

func seedDoctors(svc doctor.DoctorService) []*models.Doctor {
	seeds := []models.Doctor{
		{
			Name:           "Dr. John Smith",
			Specialization: "Cardiology",
			Qualifications: []models.Qualification{
				{Degree: "MD", Institution: "Harvard Medical School", Year: 2010},
				{Degree: "Fellowship in Cardiology", Institution: "Johns Hopkins Hospital", Year: 2015},
			},
			Contact: models.ContactInfo{
				Phone: "+1234567891",
				Email: "john.smith@medicore.com",
				Address: models.Address{
					Street: "789 Medical Center Dr", City: "New York",
					State: "NY", ZipCode: "10002", Country: "USA",
				},
			},
			Availability: models.DoctorAvailability{
				Schedule: weekdays("09:00", "17:00"),
			},
			ConsultationFee: 150,
			Experience: models.Experience{
				Years:       12,
				Description: "Specialized in interventional cardiology and heart failure management",
			},
			Languages: []string{"English", "Spanish"},
		},
		{
			Name:           "Dr. Sarah Johnson",
			Specialization: "Pediatrics",
			Qualifications: []models.Qualification{
				{Degree: "MD", Institution: "Stanford Medical School", Year: 2012},
				{Degree: "Residency in Pediatrics", Institution: "Children's Hospital", Year: 2016},
			},
			Contact: models.ContactInfo{
				Phone: "+1234567892",
				Email: "sarah.johnson@medicore.com",
				Address: models.Address{
					Street: "321 Pediatric Center", City: "Los Angeles",
					State: "CA", ZipCode: "90211", Country: "USA",
				},
			},
			Availability: models.DoctorAvailability{
				Schedule: weekdays("08:00", "16:00"),
			},
			ConsultationFee: 120,
			Experience: models.Experience{
				Years:       8,
				Description: "Specialized in pediatric care and child development",
			},
			Languages: []string{"English", "French"},
		},
	}

	out := make([]*models.Doctor, 0, len(seeds))
	for i := range seeds {
		created, err := svc.Create(&seeds[i])
		if err != nil {
			log.Fatalf("failed to create doctor %s: %v", seeds[i].Name, err)
		}
		log.Printf("Created doctor: %s", created.DoctorID)
		out = append(out, created)
	}
	return out
}

func seedPatients(svc patient.PatientService, doctors []*models.Doctor) []*models.Patient {
	seeds := []models.Patient{
		{
			Name:   "John Doe",
			Age:    35,
			Gender: "male",
			Contact: models.ContactInfo{
				Phone: "+1234567893",
				Email: "john.doe@email.com",
				Address: models.Address{
					Street: "123 Main St", City: "New York",
					State: "NY", ZipCode: "10001", Country: "USA",
				},
			},
			BloodType: "A+",
			EmergencyContact: models.EmergencyContact{
				Name: "Mary Doe", Relationship: "Spouse", Phone: "+1234567895",
			},
		},
		{
			Name:   "Jane Smith",
			Age:    28,
			Gender: "female",
			Contact: models.ContactInfo{
				Phone: "+1234567894",
				Email: "jane.smith@email.com",
				Address: models.Address{
					Street: "456 Oak Ave", City: "Los Angeles",
					State: "CA", ZipCode: "90210", Country: "USA",
				},
			},
			BloodType: "O+",
			EmergencyContact: models.EmergencyContact{
				Name: "Bob Smith", Relationship: "Father", Phone: "+1234567896",
			},
		},
	}

	out := make([]*models.Patient, 0, len(seeds))
	for i := range seeds {
		created, err := svc.Create(&seeds[i])
		if err != nil {
			log.Fatalf("failed to create patient %s: %v", seeds[i].Name, err)
		}
		log.Printf("Created patient: %s", created.PatientID)
		out = append(out, created)
	}

	// Pair each patient with a doctor's panel.
	for i, p := range out {
		doc := doctors[i%len(doctors)]
		if _, err := svc.AssignDoctor(p.ID, doc.ID); err != nil {
			log.Fatalf("failed to assign doctor to %s: %v", p.PatientID, err)
		}
	}
	log.Println("Assigned patients to doctors")
	return out
}

// seedUsers creates login accounts. Doctor and patient logins reuse the
// profile display IDs so ownership checks line up.
func seedUsers(svc auth.AuthService) {
	seeds := []auth.RegisterRequest{
		{UserID: "admin123", Role: models.RoleAdmin, Password: "000000", Name: "System Administrator", Email: "admin@medicore.com", Phone: "+1234567890"},
		{UserID: "D00001", Role: models.RoleDoctor, Password: "password123", Name: "Dr. John Smith", Email: "john.smith@medicore.com", Phone: "+1234567891"},
		{UserID: "D00002", Role: models.RoleDoctor, Password: "password123", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@medicore.com", Phone: "+1234567892"},
		{UserID: "P00001", Role: models.RolePatient, Password: "password123", Name: "John Doe", Email: "john.doe@email.com", Phone: "+1234567893"},
		{UserID: "P00002", Role: models.RolePatient, Password: "password123", Name: "Jane Smith", Email: "jane.smith@email.com", Phone: "+1234567894"},
	}
	for _, req := range seeds {
		if _, err := svc.Register(req); err != nil {
			log.Fatalf("failed to create user %s: %v", req.UserID, err)
		}
		log.Printf("Created user: %s", req.UserID)
	}
}

// nextWeekday returns the next occurrence of a Monday-to-Friday day, at
// least one day out, so seeded appointments land inside the doctors'
// schedules.
func nextWeekday(daysAhead int) time.Time {
	d := time.Now().AddDate(0, 0, daysAhead)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return models.DateOnly(d)
}

func seedAppointments(svc appointment.AppointmentService, patients []*models.Patient, doctors []*models.Doctor) {
	seeds := []appointment.CreateRequest{
		{
			PatientID: patients[0].ID,
			DoctorID:  doctors[0].ID,
			Date:      nextWeekday(1),
			Time:      "10:00",
			Reason:    "Regular checkup",
		},
		{
			PatientID: patients[1].ID,
			DoctorID:  doctors[1].ID,
			Date:      nextWeekday(2),
			Time:      "14:00",
			Reason:    "Follow-up consultation",
			Type:      models.TypeFollowUp,
		},
	}
	for _, req := range seeds {
		appt, err := svc.Create(req)
		if err != nil {
			log.Fatalf("failed to create appointment for %s: %v", req.PatientID, err)
		}
		log.Printf("Created appointment: %s", appt.AppointmentID)
	}
}

func seedRecords(svc record.RecordService, patients []*models.Patient, doctors []*models.Doctor) {
	rec := &models.MedicalRecord{
		PatientID: patients[0].ID,
		DoctorID:  doctors[0].ID,
		Date:      time.Now(),
		Diagnosis: models.Diagnosis{
			Primary:   "Hypertension",
			Secondary: []string{"High blood pressure"},
			ICD10Code: "I10",
		},
		Symptoms: []models.Symptom{
			{Symptom: "Headache", Severity: "mild", Duration: "2 days"},
		},
		VitalSigns: models.VitalSigns{
			BloodPressure: models.BloodPressure{Systolic: 140, Diastolic: 90},
			HeartRate:     75,
			Temperature:   98.6,
			Weight:        70,
		},
		Notes: models.SOAPNotes{
			Subjective: "Patient reports occasional headaches",
			Objective:  "Blood pressure elevated, otherwise normal examination",
			Assessment: "Essential hypertension",
			Plan:       "Prescribe antihypertensive medication and lifestyle modifications",
		},
		Treatment: models.Treatment{
			Medications: []models.PrescribedMedication{
				{
					Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily",
					Duration: "30 days", Instructions: "Take in the morning",
				},
			},
			Recommendations: []string{
				"Reduce salt intake",
				"Exercise regularly",
				"Monitor blood pressure daily",
			},
		},
	}

	created, err := svc.Create(rec)
	if err != nil {
		log.Fatalf("failed to create medical record: %v", err)
	}
	log.Printf("Created medical record: %s", created.RecordID)
}
