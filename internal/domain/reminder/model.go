package reminder

import (
	"errors"
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain"
	"github.com/google/uuid"
	"time"
)

// LeadTime is how long before the due moment a reminder fires.
const LeadTime = 10 * time.Minute

const EventFired = "reminder.fired"

var (
	ErrToastNotFound   = errors.New("toast not found")
	ErrInvalidSnooze   = errors.New("snooze must be a positive number of minutes")
	ErrSchedulerClosed = errors.New("scheduler closed")
)

type Kind string

const (
	KindEventStart Kind = "event_start"
	KindEventEnd   Kind = "event_end"
	KindTaskDue    Kind = "task_due"
	KindHealth     Kind = "health_reminder"
	KindSnoozed    Kind = "snoozed"
)

type Reminder struct {
	domain.Aggregate
	ID          string
	OwnerID     string
	SourceID    string
	Kind        Kind
	Title       string
	Description string
	Priority    string
	DueAt       time.Time
	lead        time.Duration
}

func New(ownerID, sourceID string, kind Kind, title, description, priority string, dueAt time.Time) *Reminder {
	return &Reminder{
		ID:          fmt.Sprintf("%s:%s", kind, sourceID),
		OwnerID:     ownerID,
		SourceID:    sourceID,
		Kind:        kind,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueAt:       dueAt,
		lead:        LeadTime,
	}
}

// ForEvent returns the start and end reminders of an event.
func ForEvent(ownerID, eventID, title, description string, start, end time.Time) []*Reminder {
	return []*Reminder{
		New(ownerID, eventID, KindEventStart, title, description, "", start),
		New(ownerID, eventID, KindEventEnd, title, description, "", end),
	}
}

func ForTask(ownerID, taskID, title, description, priority string, due time.Time) *Reminder {
	return New(ownerID, taskID, KindTaskDue, title, description, priority, due)
}

// ForHealth raises a toast for the next occurrence of a health reminder.
func ForHealth(ownerID, reminderID, title, notes string, at time.Time) *Reminder {
	return New(ownerID, reminderID, KindHealth, title, notes, "", at)
}

// Snoozed re-raises a toast after the given delay.
func Snoozed(t Toast, at time.Time, delay time.Duration) *Reminder {
	r := New(t.OwnerID, t.SourceID, KindSnoozed, t.Title, t.Description, t.Priority, at.Add(delay))
	r.ID = fmt.Sprintf("%s:%s", KindSnoozed, t.ID)
	r.lead = 0
	return r
}

func (r *Reminder) TriggerAt() time.Time {
	return r.DueAt.Add(-r.lead)
}

// Due reports whether the reminder still has to be scheduled at now.
func (r *Reminder) Due(now time.Time) bool {
	return r.TriggerAt().After(now)
}

// Fire records that the reminder went off at the given moment.
func (r *Reminder) Fire(at time.Time) {
	r.PushEvent(&FiredEvent{
		Toast: Toast{
			ID:          uuid.NewString(),
			ReminderID:  r.ID,
			OwnerID:     r.OwnerID,
			SourceID:    r.SourceID,
			Kind:        r.Kind,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
			DueAt:       r.DueAt,
			FiredAt:     at,
		},
	})
}

// Toast is a fired reminder waiting to be dismissed or snoozed.
type Toast struct {
	ID          string    `json:"id"`
	ReminderID  string    `json:"reminder_id"`
	OwnerID     string    `json:"-"`
	SourceID    string    `json:"source_id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	DueAt       time.Time `json:"due_at"`
	FiredAt     time.Time `json:"fired_at"`
}

type FiredEvent struct {
	Toast Toast
}

func (e *FiredEvent) Type() string {
	return EventFired
}

func (e *FiredEvent) PublishedAt() time.Time {
	return e.Toast.FiredAt
}
