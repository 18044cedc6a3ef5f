package models

import "time"

// WeeklyScheduleEntry is one day of a doctor's recurring weekly schedule.
// Day holds a lowercase weekday token ("monday".."sunday"); start and end are
// 24-hour "HH:MM" clock strings.
type WeeklyScheduleEntry struct {
	Day         string `bson:"day" json:"day"`
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// LeaveRange is an inclusive date interval during which the doctor accepts no
// bookings regardless of the weekly schedule.
type LeaveRange struct {
	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// DoctorAvailability aggregates the weekly schedule with leave overrides.
// IsOnLeave is a manual override independent of the dated leave ranges; either
// signal alone makes the doctor unavailable.
type DoctorAvailability struct {
	Schedule   []WeeklyScheduleEntry `bson:"schedule,omitempty" json:"schedule,omitempty"`
	IsOnLeave  bool                  `bson:"isOnLeave" json:"isOnLeave"`
	LeaveDates []LeaveRange          `bson:"leaveDates,omitempty" json:"leaveDates,omitempty"`
}

// Qualification is a degree held by a doctor.
type Qualification struct {
	Degree      string `bson:"degree,omitempty" json:"degree,omitempty"`
	Institution string `bson:"institution,omitempty" json:"institution,omitempty"`
	Year        int    `bson:"year,omitempty" json:"year,omitempty"`
}

// Experience describes professional tenure.
type Experience struct {
	Years       int    `bson:"years,omitempty" json:"years,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// ConsultationEntry is an item of a doctor's consultation history.
type ConsultationEntry struct {
	PatientID     string    `bson:"patientId" json:"patientId"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Date          time.Time `bson:"date" json:"date"`
	Diagnosis     string    `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Treatment     string    `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Doctor is the full doctor profile document.
type Doctor struct {
	ID                  string              `bson:"id" json:"id"`
	DoctorID            string              `bson:"doctorId" json:"doctorId"`
	Name                string              `bson:"name" json:"name"`
	Specialization      string              `bson:"specialization" json:"specialization"`
	Qualifications      []Qualification     `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Contact             ContactInfo         `bson:"contact" json:"contact"`
	Availability        DoctorAvailability  `bson:"availability" json:"availability"`
	ConsultationFee     float64             `bson:"consultationFee" json:"consultationFee"`
	Experience          Experience          `bson:"experience,omitempty" json:"experience,omitempty"`
	Languages           []string            `bson:"languages,omitempty" json:"languages,omitempty"`
	IsActive            bool                `bson:"isActive" json:"isActive"`
	AssignedPatients    []string            `bson:"assignedPatients,omitempty" json:"assignedPatients,omitempty"`
	ConsultationHistory []ConsultationEntry `bson:"consultationHistory,omitempty" json:"consultationHistory,omitempty"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DoctorSummary is the trimmed view embedded in appointment and record
// responses.
type DoctorSummary struct {
	ID             string `bson:"id" json:"id"`
	DoctorID       string `bson:"doctorId" json:"doctorId"`
	Name           string `bson:"name" json:"name"`
	Specialization string `bson:"specialization" json:"specialization"`
}

// Summary returns the trimmed view of the doctor.
func (d *Doctor) Summary() DoctorSummary {
	return DoctorSummary{
		ID:             d.ID,
		DoctorID:       d.DoctorID,
		Name:           d.Name,
		Specialization: d.Specialization,
	}
}

// IsAvailable reports whether the doctor is open for booking on the given
// calendar date at the given "HH:MM" clock time. It fails closed: missing or
// malformed schedule data makes the doctor unavailable.
//
// Order of checks: weekly schedule entry for the weekday (first match wins),
// the manual on-leave override, dated leave ranges (inclusive bounds), and
// finally the schedule's time window (boundary times count as available;
// whether an adjacent booking collides is the conflict check's concern).
func (d *Doctor) IsAvailable(date time.Time, clock string) bool {
	day := WeekdayToken(date)

	var entry *WeeklyScheduleEntry
	for i := range d.Availability.Schedule {
		if d.Availability.Schedule[i].Day == day {
			entry = &d.Availability.Schedule[i]
			break
		}
	}
	if entry == nil || !entry.IsAvailable {
		return false
	}

	if d.Availability.IsOnLeave {
		return false
	}

	on := DateOnly(date)
	for _, leave := range d.Availability.LeaveDates {
		start := DateOnly(leave.StartDate)
		end := DateOnly(leave.EndDate)
		if !on.Before(start) && !on.After(end) {
			return false
		}
	}

	t, ok := MinuteOfDay(clock)
	if !ok {
		return false
	}
	startMin, okStart := MinuteOfDay(entry.StartTime)
	endMin, okEnd := MinuteOfDay(entry.EndTime)
	if !okStart || !okEnd {
		return false
	}
	return startMin <= t && t <= endMin
}
