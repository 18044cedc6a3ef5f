package models

import "time"

// Address is a postal address embedded in contact blocks.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// ContactInfo groups phone, email and address details.
type ContactInfo struct {
	Phone   string  `bson:"phone" json:"phone"`
	Email   string  `bson:"email,omitempty" json:"email,omitempty"`
	Address Address `bson:"address,omitempty" json:"address,omitempty"`
}

// MinuteOfDay parses a 24-hour "HH:MM" clock string into minutes from
// midnight. The second return is false for anything that does not parse.
func MinuteOfDay(clock string) (int, bool) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, false
	}
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	if clock[0] < '0' || clock[0] > '9' || clock[1] < '0' || clock[1] > '9' ||
		clock[3] < '0' || clock[3] > '9' || clock[4] < '0' || clock[4] > '9' {
		return 0, false
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// DateOnly truncates a timestamp to its calendar date in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdayTokens = [...]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayToken maps a date to its lowercase schedule token. The mapping is
// fixed and locale-independent.
func WeekdayToken(t time.Time) string {
	return weekdayTokens[t.Weekday()]
}
