package form

import (
	"strings"
	"time"
)

type EventForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Repeat      string `json:"repeat" validate:"omitempty,oneof=none daily weekly monthly"`
	Category    string `json:"category" validate:"omitempty,oneof=general work personal meeting"`
	LinkedTask  string `json:"linked_task,omitempty"`
	Location    string `json:"location"`
}

var eventMessages = map[string]string{
	"title.required":       "Please enter title",
	"description.required": "Please enter description",
	"start_time.required":  "Please select start time",
	"end_time.required":    "Please select end time",
	"repeat.oneof":         "Please select a valid repeat option",
	"category.oneof":       "Please select a valid category",
}

// Normalize trims the text fields and fills the defaults of the event modal.
func (f EventForm) Normalize() EventForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.StartTime = strings.TrimSpace(f.StartTime)
	f.EndTime = strings.TrimSpace(f.EndTime)
	f.Location = strings.TrimSpace(f.Location)
	if f.Repeat == "" {
		f.Repeat = "none"
	}
	if f.Category == "" {
		f.Category = "general"
	}
	return f
}

// Validate reports every invalid field of the form. Times without a zone are
// read in now's location.
func (f EventForm) Validate(now time.Time) error {
	f = f.Normalize()
	errs := check(f, eventMessages)

	var start time.Time
	startOK := false
	if f.StartTime != "" {
		t, err := ParseDateTime(f.StartTime, now.Location())
		switch {
		case err != nil:
			errs.Add("start_time", "Please select a valid start time")
		case t.Before(now):
			errs.Add("start_time", "Cannot select a start time in the past")
			start, startOK = t, true
		default:
			start, startOK = t, true
		}
	}

	if f.EndTime != "" {
		end, err := ParseDateTime(f.EndTime, now.Location())
		switch {
		case err != nil:
			errs.Add("end_time", "Please select a valid end time")
		case startOK && !end.After(start):
			errs.Add("end_time", "End time must be after start time")
		case end.Before(now):
			errs.Add("end_time", "Cannot select an end time in the past")
		}
	}

	return errs.Err()
}

// Start returns the parsed start time of a valid form.
func (f EventForm) Start(loc *time.Location) (time.Time, error) {
	return ParseDateTime(strings.TrimSpace(f.StartTime), loc)
}

func (f EventForm) End(loc *time.Location) (time.Time, error) {
	return ParseDateTime(strings.TrimSpace(f.EndTime), loc)
}
