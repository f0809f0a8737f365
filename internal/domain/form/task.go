package form

import (
	"strings"
	"time"
)

const (
	ImportanceLow    = 1
	ImportanceMedium = 2
	ImportanceHigh   = 3
)

type TaskForm struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	DueDate          string `json:"due_date" validate:"required"`
	Importance       int    `json:"importance" validate:"min=1,max=3"`
	AssignedTo       string `json:"assigned_to,omitempty"`
	Category         string `json:"category" validate:"omitempty,oneof=work personal urgent long-term"`
	Tags             string `json:"tags"`
	EstimatedMinutes *int   `json:"estimated_minutes" validate:"omitempty,min=1"`
	UrgencyScore     *int   `json:"urgency_score" validate:"omitempty,min=0"`
	Position         int    `json:"position"`
}

var taskMessages = map[string]string{
	"title.required":        "Title is required",
	"description.required":  "Description is required",
	"due_date.required":     "Due date is required",
	"importance.min":        "Please select a priority level",
	"importance.max":        "Please select a priority level",
	"category.oneof":        "Please select a valid category",
	"estimated_minutes.min": "Estimated minutes must be at least 1",
	"urgency_score.min":     "Urgency score cannot be negative",
}

func (f TaskForm) Normalize() TaskForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DueDate = strings.TrimSpace(f.DueDate)
	f.AssignedTo = strings.TrimSpace(f.AssignedTo)
	f.Tags = strings.TrimSpace(f.Tags)
	if f.Importance == 0 {
		f.Importance = ImportanceMedium
	}
	return f
}

func (f TaskForm) Validate(now time.Time) error {
	f = f.Normalize()
	errs := check(f, taskMessages)

	if f.DueDate != "" {
		due, err := f.Due(now.Location())
		switch {
		case err != nil:
			errs.Add("due_date", "Please select a future date")
		case due.Before(now):
			errs.Add("due_date", "Cannot select a date in the past")
		}
	}

	return errs.Err()
}

// Due parses the due date. A bare date means midnight in loc.
func (f TaskForm) Due(loc *time.Location) (time.Time, error) {
	v := strings.TrimSpace(f.DueDate)
	if t, err := time.ParseInLocation(DateLayout, v, loc); err == nil {
		return t, nil
	}
	return ParseDateTime(v, loc)
}

// Priority maps the numeric importance onto the level names used by the
// prioritization API.
func (f TaskForm) Priority() string {
	return PriorityFor(f.Importance)
}

func PriorityFor(importance int) string {
	switch importance {
	case ImportanceLow:
		return "low"
	case ImportanceHigh:
		return "high"
	default:
		return "medium"
	}
}
