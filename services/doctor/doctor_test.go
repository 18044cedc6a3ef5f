package doctor

import (
	"testing"
	"time"

	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

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

func (f *fakeDoctorRepo) Create(d *models.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) Update(d *models.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) UpdateSetDocument(id string, set bson.M) error {
	d := f.doctors[id]
	if v, ok := set["name"]; ok {
		d.Name = v.(string)
	}
	if v, ok := set["specialization"]; ok {
		d.Specialization = v.(string)
	}
	return nil
}

func (f *fakeDoctorRepo) UpdateAvailability(id string, availability models.DoctorAvailability) error {
	f.doctors[id].Availability = availability
	return nil
}

func (f *fakeDoctorRepo) AddAssignedPatient(id, patientID string) error {
	d := f.doctors[id]
	d.AssignedPatients = append(d.AssignedPatients, patientID)
	return nil
}

func (f *fakeDoctorRepo) Deactivate(id string) error {
	f.doctors[id].IsActive = false
	return nil
}

type fakeSequenceRepo struct{ n int }

func (f *fakeSequenceRepo) Next(name, prefix string) (string, error) {
	f.n++
	return prefix + "0000" + string(rune('0'+f.n)), nil
}

func newTestService() *DefaultDoctorService {
	return &DefaultDoctorService{
		Repo:     &fakeDoctorRepo{doctors: map[string]*models.Doctor{}},
		Sequence: &fakeSequenceRepo{},
	}
}

func TestCreateMintsIDs(t *testing.T) {
	svc := newTestService()

	d, err := svc.Create(&models.Doctor{Name: "Dr. A", Specialization: "Dermatology"})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "D00001", d.DoctorID)
	assert.True(t, d.IsActive)

	d2, err := svc.Create(&models.Doctor{Name: "Dr. B", Specialization: "Neurology"})
	require.NoError(t, err)
	assert.Equal(t, "D00002", d2.DoctorID)
}

func TestCreateRejectsBadSchedule(t *testing.T) {
	svc := newTestService()

	cases := []models.DoctorAvailability{
		{Schedule: []models.WeeklyScheduleEntry{{Day: "funday", StartTime: "09:00", EndTime: "17:00"}}},
		{Schedule: []models.WeeklyScheduleEntry{{Day: "monday", StartTime: "9am", EndTime: "17:00"}}},
		{Schedule: []models.WeeklyScheduleEntry{{Day: "monday", StartTime: "17:00", EndTime: "09:00"}}},
	}
	for _, availability := range cases {
		_, err := svc.Create(&models.Doctor{Name: "Dr. A", Availability: availability})
		assert.Error(t, err)
	}
}

func TestGetByIDFallsBackToDisplayID(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology"})
	require.NoError(t, err)

	byDisplay, err := svc.GetByID(created.DoctorID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byDisplay.ID)

	_, err = svc.GetByID("D99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateScheduleRoundTrip(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology"})
	require.NoError(t, err)

	availability := models.DoctorAvailability{
		Schedule: []models.WeeklyScheduleEntry{
			{Day: "monday", StartTime: "09:00", EndTime: "13:00", IsAvailable: true},
		},
		IsOnLeave: true,
	}
	view, err := svc.UpdateSchedule(created.ID, availability)
	require.NoError(t, err)
	assert.True(t, view.IsOnLeave)
	require.Len(t, view.Schedule, 1)
	assert.Equal(t, "13:00", view.Schedule[0].EndTime)
}

func TestUpdateScheduleNormalizesDayCase(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology"})
	require.NoError(t, err)

	availability := models.DoctorAvailability{
		Schedule: []models.WeeklyScheduleEntry{
			{Day: "Monday", StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		},
	}
	view, err := svc.UpdateSchedule(created.ID, availability)
	require.NoError(t, err)
	require.Len(t, view.Schedule, 1)
	assert.Equal(t, "monday", view.Schedule[0].Day)

	// The stored entry must actually take effect on that weekday.
	d, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, d.IsAvailable(monday, "10:00"))
}

func TestUpdateScheduleRejectsInvertedLeaveRange(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology"})
	require.NoError(t, err)

	availability := models.DoctorAvailability{
		LeaveDates: []models.LeaveRange{{
			StartDate: mustDate(t, "2024-07-10"),
			EndDate:   mustDate(t, "2024-07-01"),
		}},
	}
	_, err = svc.UpdateSchedule(created.ID, availability)
	assert.Error(t, err)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestDeleteDeactivates(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.DoctorID))
	d, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, d.IsActive)
}
