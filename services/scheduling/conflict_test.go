package scheduling

import (
	"testing"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	"medicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appt(id, doctorID string, date time.Time, clock string, duration int, status string) models.Appointment {
	return models.Appointment{
		ID:       id,
		DoctorID: doctorID,
		Date:     date,
		Time:     clock,
		Duration: duration,
		Status:   status,
	}
}

// fakeAppointmentRepo serves canned appointments, applying the same same-day,
// blocking-status and exclude-ID filtering the Mongo query does.
type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) ListForDoctorDay(doctorID string, dayStart time.Time, excludeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID != doctorID || !models.DateOnly(a.Date).Equal(models.DateOnly(dayStart)) {
			continue
		}
		if !a.Blocking() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByID(string) (*models.Appointment, error) { return nil, nil }
func (f *fakeAppointmentRepo) List(appointmentRepo.ListOptions) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}
func (f *fakeAppointmentRepo) Create(*models.Appointment) error       { return nil }
func (f *fakeAppointmentRepo) Update(*models.Appointment) error       { return nil }
func (f *fakeAppointmentRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (f *fakeAppointmentRepo) Delete(string) error                    { return nil }

func TestOverlaps(t *testing.T) {
	base := day(2024, time.June, 10)
	at := func(clock string) time.Time {
		m, ok := models.MinuteOfDay(clock)
		require.True(t, ok)
		return base.Add(time.Duration(m) * time.Minute)
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", at("09:00"), at("09:30"), at("10:00"), at("10:30"), false},
		{"identical", at("10:00"), at("10:30"), at("10:00"), at("10:30"), true},
		{"partial overlap", at("10:00"), at("10:30"), at("10:15"), at("10:45"), true},
		{"contained", at("10:00"), at("11:00"), at("10:15"), at("10:30"), true},
		{"touching end to start", at("10:00"), at("10:30"), at("10:30"), at("11:00"), false},
		{"touching start to end", at("10:30"), at("11:00"), at("10:00"), at("10:30"), false},
		{"one minute overlap", at("10:29"), at("10:59"), at("10:00"), at("10:30"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// The test is symmetric in which interval is the candidate.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestCandidateInterval(t *testing.T) {
	start, end, ok := CandidateInterval(day(2024, time.June, 10), "14:00", 30)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.June, 10, 14, 30, 0, 0, time.UTC), end)

	_, _, ok = CandidateInterval(day(2024, time.June, 10), "2pm", 30)
	assert.False(t, ok)
}

func TestHasConflictBackToBack(t *testing.T) {
	d := day(2024, time.June, 10)
	checker := &DefaultConflictChecker{Repo: &fakeAppointmentRepo{appts: []models.Appointment{
		appt("a1", "doc-1", d, "10:00", 30, models.StatusScheduled),
	}}}

	conflict, err := checker.HasConflict("doc-1", d, "10:30", 30, "")
	require.NoError(t, err)
	assert.False(t, conflict, "back-to-back booking must be allowed")

	conflict, err = checker.HasConflict("doc-1", d, "10:29", 30, "")
	require.NoError(t, err)
	assert.True(t, conflict, "one minute of overlap must conflict")
}

func TestHasConflictIgnoresCancelledAndNoShow(t *testing.T) {
	d := day(2024, time.June, 10)
	checker := &DefaultConflictChecker{Repo: &fakeAppointmentRepo{appts: []models.Appointment{
		appt("a1", "doc-1", d, "14:00", 30, models.StatusConfirmed),
		appt("a2", "doc-1", d, "15:00", 30, models.StatusCancelled),
		appt("a3", "doc-1", d, "16:00", 30, models.StatusNoShow),
	}}}

	conflict, err := checker.HasConflict("doc-1", d, "14:15", 30, "")
	require.NoError(t, err)
	assert.True(t, conflict, "active appointment must block 14:15-14:45")

	conflict, err = checker.HasConflict("doc-1", d, "15:00", 30, "")
	require.NoError(t, err)
	assert.False(t, conflict, "cancelled appointment frees its slot")

	conflict, err = checker.HasConflict("doc-1", d, "16:00", 30, "")
	require.NoError(t, err)
	assert.False(t, conflict, "no-show appointment frees its slot")
}

func TestHasConflictExcludeSelfOnReschedule(t *testing.T) {
	d := day(2024, time.June, 10)
	checker := &DefaultConflictChecker{Repo: &fakeAppointmentRepo{appts: []models.Appointment{
		appt("a1", "doc-1", d, "11:00", 30, models.StatusScheduled),
	}}}

	conflict, err := checker.HasConflict("doc-1", d, "11:00", 30, "a1")
	require.NoError(t, err)
	assert.False(t, conflict, "an appointment must not conflict with its own prior slot")

	conflict, err = checker.HasConflict("doc-1", d, "11:00", 30, "")
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasConflictEmptyDay(t *testing.T) {
	checker := &DefaultConflictChecker{Repo: &fakeAppointmentRepo{}}
	conflict, err := checker.HasConflict("doc-1", day(2024, time.June, 10), "09:00", 60, "")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflictRejectsMalformedClock(t *testing.T) {
	checker := &DefaultConflictChecker{Repo: &fakeAppointmentRepo{}}
	_, err := checker.HasConflict("doc-1", day(2024, time.June, 10), "9 o'clock", 30, "")
	assert.Error(t, err)
}

func TestHasConflictSkipsMalformedStoredTime(t *testing.T) {
	d := day(2024, time.June, 10)
	checker := &DefaultConflictChecker{Repo: &fakeAppointmentRepo{appts: []models.Appointment{
		appt("a1", "doc-1", d, "garbage", 30, models.StatusScheduled),
	}}}

	conflict, err := checker.HasConflict("doc-1", d, "10:00", 30, "")
	require.NoError(t, err)
	assert.False(t, conflict, "an unparseable stored time cannot collide")
}
