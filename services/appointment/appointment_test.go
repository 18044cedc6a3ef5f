package appointment

import (
	"testing"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"
	"medicore/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	return f.patients[id], nil
}

func (f *fakePatientRepo) GetByPatientID(patientID string) (*models.Patient, error) {
	for _, p := range f.patients {
		if p.PatientID == patientID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) List(patientRepo.ListOptions) ([]models.Patient, int64, error) {
	return nil, 0, nil
}
func (f *fakePatientRepo) Create(*models.Patient) error           { return nil }
func (f *fakePatientRepo) Update(*models.Patient) error           { return nil }
func (f *fakePatientRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (f *fakePatientRepo) Deactivate(string) error                { return nil }

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) GetByDoctorID(doctorID string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.DoctorID == doctorID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) List(doctorRepo.ListOptions) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}
func (f *fakeDoctorRepo) Create(*models.Doctor) error                                { return nil }
func (f *fakeDoctorRepo) Update(*models.Doctor) error                                { return nil }
func (f *fakeDoctorRepo) UpdateSetDocument(string, bson.M) error                     { return nil }
func (f *fakeDoctorRepo) UpdateAvailability(string, models.DoctorAvailability) error { return nil }
func (f *fakeDoctorRepo) AddAssignedPatient(string, string) error                    { return nil }
func (f *fakeDoctorRepo) Deactivate(string) error                                    { return nil }

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	if a, ok := f.appts[id]; ok {
		copied := *a
		return &copied, nil
	}
	for _, a := range f.appts {
		if a.AppointmentID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) List(appointmentRepo.ListOptions) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentRepo) ListForDoctorDay(doctorID string, day time.Time, excludeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID != doctorID || a.ID == excludeID || !a.Blocking() {
			continue
		}
		if !models.DateOnly(a.Date).Equal(models.DateOnly(day)) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	copied := *appt
	f.appts[appt.ID] = &copied
	return nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	copied := *appt
	f.appts[appt.ID] = &copied
	return nil
}

func (f *fakeAppointmentRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	a := f.appts[id]
	for key, value := range updateDoc {
		switch key {
		case "date":
			a.Date = value.(time.Time)
		case "time":
			a.Time = value.(string)
		case "duration":
			a.Duration = value.(int)
		case "status":
			a.Status = value.(string)
		case "reason":
			a.Reason = value.(string)
		case "notes":
			a.Notes = value.(string)
		case "cancellationReason":
			a.CancellationReason = value.(string)
		case "cancelledBy":
			a.CancelledBy = value.(string)
		case "cancelledAt":
			a.CancelledAt = value.(time.Time)
		case "reminderSent":
			a.ReminderSent = value.(bool)
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	delete(f.appts, id)
	return nil
}

type fakeSequenceRepo struct {
	n int
}

func (f *fakeSequenceRepo) Next(name, prefix string) (string, error) {
	f.n++
	return prefix + "0000" + string(rune('0'+f.n)), nil
}

type fakeReminderScheduler struct {
	scheduled []string
	cancelled []string
}

func (f *fakeReminderScheduler) Schedule(appt *models.Appointment) error {
	f.scheduled = append(f.scheduled, appt.ID)
	return nil
}

func (f *fakeReminderScheduler) Cancel(apptID string) error {
	f.cancelled = append(f.cancelled, apptID)
	return nil
}

func weekdayDoctor() *models.Doctor {
	return &models.Doctor{
		ID:             "doc-1",
		DoctorID:       "D00001",
		Name:           "Dr. Sarah Smith",
		Specialization: "Cardiology",
		IsActive:       true,
		ConsultationFee: 150,
		Availability: models.DoctorAvailability{
			Schedule: []models.WeeklyScheduleEntry{
				{Day: "monday", StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
				{Day: "tuesday", StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
			},
		},
	}
}

func newTestService() (*DefaultAppointmentService, *fakeAppointmentRepo, *fakeReminderScheduler) {
	appts := &fakeAppointmentRepo{appts: map[string]*models.Appointment{}}
	reminders := &fakeReminderScheduler{}
	svc := &DefaultAppointmentService{
		Repo: appts,
		PatientRepo: &fakePatientRepo{patients: map[string]*models.Patient{
			"pat-1": {ID: "pat-1", PatientID: "P00001", Name: "John Doe", IsActive: true},
		}},
		DoctorRepo: &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": weekdayDoctor(),
		}},
		Sequence:  &fakeSequenceRepo{},
		Conflicts: &scheduling.DefaultConflictChecker{Repo: appts},
		Reminders: reminders,
	}
	return svc, appts, reminders
}

// 2024-06-10 is a Monday.
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestCreateBooksOpenSlot(t *testing.T) {
	svc, _, reminders := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "P00001",
		DoctorID:  "D00001",
		Date:      monday,
		Time:      "10:00",
		Reason:    "Checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, "pat-1", appt.PatientID)
	assert.Equal(t, "doc-1", appt.DoctorID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, DefaultAppointmentDuration, appt.Duration)
	assert.Equal(t, models.TypeConsultation, appt.Type)
	assert.Equal(t, 150.0, appt.Fee)
	assert.NotEmpty(t, appt.AppointmentID)
	require.NotNil(t, appt.Patient)
	assert.Equal(t, "John Doe", appt.Patient.Name)
	require.NotNil(t, appt.Doctor)
	assert.Equal(t, "Cardiology", appt.Doctor.Specialization)
	assert.Equal(t, []string{appt.ID}, reminders.scheduled)
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Duration: 30, Reason: "Checkup",
	})
	require.NoError(t, err)

	_, err = svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:15", Duration: 30, Reason: "Checkup",
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateAllowsBackToBack(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Duration: 30, Reason: "Checkup",
	})
	require.NoError(t, err)

	_, err = svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:30", Duration: 30, Reason: "Follow-up",
	})
	assert.NoError(t, err)
}

func TestCreateIgnoresCancelledSlot(t *testing.T) {
	svc, appts, _ := newTestService()

	first, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "11:00", Duration: 30, Reason: "Checkup",
	})
	require.NoError(t, err)
	appts.appts[first.ID].Status = models.StatusCancelled

	_, err = svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "11:00", Duration: 30, Reason: "Checkup",
	})
	assert.NoError(t, err)
}

func TestCreateRejectsOffScheduleDay(t *testing.T) {
	svc, _, _ := newTestService()

	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: saturday, Time: "10:00", Reason: "Checkup",
	})
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
}

func TestCreateChecksAvailabilityBeforeConflict(t *testing.T) {
	svc, appts, _ := newTestService()

	// An existing booking overlaps the request, but the doctor is also on
	// leave; the unavailability verdict must win.
	appts.appts["a1"] = &models.Appointment{
		ID: "a1", DoctorID: "doc-1", Date: monday, Time: "10:00",
		Duration: 60, Status: models.StatusScheduled,
	}
	doc := weekdayDoctor()
	doc.Availability.IsOnLeave = true
	svc.DoctorRepo = &fakeDoctorRepo{doctors: map[string]*models.Doctor{"doc-1": doc}}

	_, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
}

func TestCreateRejectsDurationOutOfRange(t *testing.T) {
	svc, _, _ := newTestService()

	for _, duration := range []int{5, 14, 121, 480} {
		_, err := svc.Create(CreateRequest{
			PatientID: "pat-1", DoctorID: "doc-1",
			Date: monday, Time: "10:00", Duration: duration, Reason: "Checkup",
		})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", duration)
	}
}

func TestCreateRejectsUnknownParticipants(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(CreateRequest{
		PatientID: "nope", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "nope",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateExcludesSelfOnReschedule(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Duration: 30, Reason: "Checkup",
	})
	require.NoError(t, err)

	// Nudging within the appointment's own window must not collide with
	// itself.
	newTime := "10:15"
	updated, err := svc.Update(appt.ID, UpdateRequest{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "10:15", updated.Time)
	assert.False(t, updated.ReminderSent)
}

func TestUpdateRejectsCollisionWithOtherBooking(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Duration: 30, Reason: "Checkup",
	})
	require.NoError(t, err)
	_, err = svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "11:00", Duration: 30, Reason: "Checkup",
	})
	require.NoError(t, err)

	newTime := "11:15"
	_, err = svc.Update(appt.ID, UpdateRequest{Time: &newTime})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestUpdateStatusCancellation(t *testing.T) {
	svc, _, reminders := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(appt.ID, StatusRequest{
		Status:             models.StatusCancelled,
		CancellationReason: "patient request",
		CancelledBy:        "patient",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, "patient request", updated.CancellationReason)
	assert.Equal(t, "patient", updated.CancelledBy)
	assert.False(t, updated.CancelledAt.IsZero())
	assert.Equal(t, []string{appt.ID}, reminders.cancelled)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(appt.ID, StatusRequest{Status: "postponed"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByIDFallsBackToDisplayID(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	require.NoError(t, err)

	byDisplay, err := svc.GetByID(appt.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, appt.ID, byDisplay.ID)

	_, err = svc.GetByID("A99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesAndCancelsReminder(t *testing.T) {
	svc, appts, reminders := newTestService()

	appt, err := svc.Create(CreateRequest{
		PatientID: "pat-1", DoctorID: "doc-1",
		Date: monday, Time: "10:00", Reason: "Checkup",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(appt.ID))
	assert.Empty(t, appts.appts)
	assert.Equal(t, []string{appt.ID}, reminders.cancelled)
}
