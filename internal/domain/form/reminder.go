package form

import (
	"strings"
	"time"
)

type HealthReminderForm struct {
	Title     string `json:"title" validate:"required"`
	Type      string `json:"type" validate:"oneof=medication appointment exercise hydration checkup"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,clock"`
	Frequency string `json:"frequency" validate:"oneof=once daily weekly monthly hourly"`
	Notes     string `json:"notes"`
	Active    bool   `json:"active"`
}

var healthReminderMessages = map[string]string{
	"title.required":  "Title is required",
	"type.oneof":      "Please select a reminder type",
	"date.required":   "Date is required",
	"date.datetime":   "Please select a valid date",
	"time.required":   "Time is required",
	"time.clock":      "Please select a valid time",
	"frequency.oneof": "Please select a frequency",
}

func (f HealthReminderForm) Normalize() HealthReminderForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Notes = strings.TrimSpace(f.Notes)
	if f.Type == "" {
		f.Type = "medication"
	}
	if f.Frequency == "" {
		f.Frequency = "once"
	}
	return f
}

func (f HealthReminderForm) Validate() error {
	return check(f.Normalize(), healthReminderMessages).Err()
}

// At combines the date and time fields.
func (f HealthReminderForm) At(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+ClockLayout, f.Date+" "+f.Time, loc)
}
