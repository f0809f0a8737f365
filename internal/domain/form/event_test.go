package form

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC)

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	assert.ErrorIs(t, err, ErrInvalidForm)
	return verr.Fields
}

func validEvent() EventForm {
	return EventForm{
		Title:       "Standup",
		Description: "Daily sync",
		StartTime:   "2025-01-01T09:00",
		EndTime:     "2025-01-01T09:30",
	}
}

func TestEventForm_Valid(t *testing.T) {
	assert.NoError(t, validEvent().Validate(now))
}

func TestEventForm_EndBeforeStart(t *testing.T) {
	f := validEvent()
	f.StartTime = "2025-01-01T10:00"
	f.EndTime = "2025-01-01T09:00"

	errs := fieldErrors(t, f.Validate(now))
	assert.Equal(t, FieldErrors{"end_time": "End time must be after start time"}, errs)
}

func TestEventForm_OrderingWinsOverPast(t *testing.T) {
	late := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	f := validEvent()
	f.StartTime = "2025-01-01T10:00"
	f.EndTime = "2025-01-01T09:00"

	errs := fieldErrors(t, f.Validate(late))
	assert.Equal(t, "Cannot select a start time in the past", errs["start_time"])
	assert.Equal(t, "End time must be after start time", errs["end_time"])
}

func TestEventForm_Required(t *testing.T) {
	errs := fieldErrors(t, EventForm{Title: "   "}.Validate(now))

	assert.Equal(t, FieldErrors{
		"title":       "Please enter title",
		"description": "Please enter description",
		"start_time":  "Please select start time",
		"end_time":    "Please select end time",
	}, errs)
}

func TestEventForm_Past(t *testing.T) {
	f := validEvent()
	f.StartTime = "2024-12-30T09:00"
	f.EndTime = "2024-12-30T10:00"

	errs := fieldErrors(t, f.Validate(now))
	assert.Equal(t, "Cannot select a start time in the past", errs["start_time"])
	assert.Equal(t, "Cannot select an end time in the past", errs["end_time"])
}

func TestEventForm_InvalidValues(t *testing.T) {
	f := validEvent()
	f.StartTime = "tomorrow"
	f.EndTime = "2025-01-01T09:30"
	f.Repeat = "hourly"

	errs := fieldErrors(t, f.Validate(now))
	assert.Equal(t, "Please select a valid start time", errs["start_time"])
	assert.Equal(t, "Please select a valid repeat option", errs["repeat"])
	assert.False(t, errs.Has("end_time"))
}

func TestEventForm_RFC3339(t *testing.T) {
	f := validEvent()
	f.StartTime = "2025-01-01T09:00:00Z"
	f.EndTime = "2025-01-01T10:00:00+00:00"

	assert.NoError(t, f.Validate(now))
}

func TestEventForm_Normalize(t *testing.T) {
	f := EventForm{Title: "  Review  "}.Normalize()

	assert.Equal(t, "Review", f.Title)
	assert.Equal(t, "none", f.Repeat)
	assert.Equal(t, "general", f.Category)
}
