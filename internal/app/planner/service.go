package plannerapp

import (
	"context"
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	reminderapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/reminder"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/schedule"
	"github.com/r3labs/diff"
	"log/slog"
	"time"
)

type Backend interface {
	EventSuggestions(ctx context.Context, q backend.EventSuggestionQuery) (*backend.Suggestions, error)
	TaskSuggestions(ctx context.Context, q backend.TaskSuggestionQuery) (*backend.Suggestions, error)
	Preferences(ctx context.Context) (schedule.Preferences, error)
	UpdatePreferences(ctx context.Context, changes diff.Changelog) error
	UserTasks(ctx context.Context) (*backend.UserTasks, error)

	ActiveEvents(ctx context.Context) ([]backend.Event, error)
	CreateEvent(ctx context.Context, f form.EventForm) (*backend.Event, error)
	UpdateEvent(ctx context.Context, eventID int, f form.EventForm) (*backend.Event, error)
	Tasks(ctx context.Context) ([]backend.Task, error)
	CreateTask(ctx context.Context, f form.TaskForm) (*backend.Task, error)
	UpdateTask(ctx context.Context, taskID int, f form.TaskForm) (*backend.Task, error)
}

type Reminders interface {
	Replace(ownerID string, scope reminderapp.Scope, reminders []*reminder.Reminder) (int, error)
}

type Service struct {
	logger    *slog.Logger
	backend   Backend
	reminders Reminders
	loc       *time.Location
}

// New creates the planner. Dates coming from the API carry no zone and are
// read in loc.
func New(logger *slog.Logger, b Backend, reminders Reminders, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		logger:    logger,
		backend:   b,
		reminders: reminders,
		loc:       loc,
	}
}

// Suggestions is a ranked slot list ready for display.
type Suggestions struct {
	schedule.Presentation
	TotalSlotsFound  int                       `json:"total_slots_found"`
	WorkloadAnalysis *backend.WorkloadAnalysis `json:"workload_analysis,omitempty"`
}

func needsCompletion(slots []schedule.Slot) bool {
	for _, s := range slots {
		if s.FinalScore == 0 {
			return true
		}
	}
	return false
}

func (s *Service) EventSuggestions(ctx context.Context, q backend.EventSuggestionQuery) (*Suggestions, error) {
	res, err := s.backend.EventSuggestions(ctx, q)
	if err != nil {
		return nil, err
	}

	slots := res.Suggestions
	if needsCompletion(slots) {
		prefs, err := s.Preferences(ctx)
		if err != nil {
			return nil, err
		}
		for i, slot := range slots {
			slots[i] = schedule.Complete(slot, schedule.EventBonus(prefs, q.Priority, q.Category, slot.StartHour))
		}
	}

	return &Suggestions{
		Presentation:     schedule.Present(schedule.KindEvent, slots),
		TotalSlotsFound:  res.TotalSlotsFound,
		WorkloadAnalysis: res.WorkloadAnalysis,
	}, nil
}

func (s *Service) TaskSuggestions(ctx context.Context, q backend.TaskSuggestionQuery) (*Suggestions, error) {
	res, err := s.backend.TaskSuggestions(ctx, q)
	if err != nil {
		return nil, err
	}

	slots := res.Suggestions
	if needsCompletion(slots) {
		prefs, err := s.Preferences(ctx)
		if err != nil {
			return nil, err
		}
		high := s.highPriorityTasks(ctx, res.WorkloadAnalysis)
		balance := schedule.WorkloadBalance(high)

		for i, slot := range slots {
			slot = schedule.Complete(slot, schedule.TaskBonus(prefs, q.TaskPriority, q.TaskUrgency, high, slot.StartHour))
			if slot.WorkloadBalance == "" {
				slot.WorkloadBalance = balance
			}
			slots[i] = slot
		}
	}

	return &Suggestions{
		Presentation:     schedule.Present(schedule.KindTask, slots),
		TotalSlotsFound:  res.TotalSlotsFound,
		WorkloadAnalysis: res.WorkloadAnalysis,
	}, nil
}

func (s *Service) highPriorityTasks(ctx context.Context, workload *backend.WorkloadAnalysis) int {
	if workload != nil {
		return workload.HighPriorityTasks
	}

	tasks, err := s.backend.UserTasks(ctx)
	if err != nil {
		s.logger.Warn("failed to load task workload", "err", err)
		return 0
	}
	return tasks.PriorityBreakdown.High
}

// Preferences loads the scheduling preferences of the user. Failures other
// than an expired session fall back to the defaults.
func (s *Service) Preferences(ctx context.Context) (schedule.Preferences, error) {
	prefs, err := s.backend.Preferences(ctx)
	if err != nil {
		if backend.IsUnauthorized(err) || errors.Is(err, context.Canceled) {
			return schedule.Preferences{}, err
		}
		s.logger.Warn("failed to load preferences, using defaults", "err", err)
		return schedule.DefaultPreferences(), nil
	}
	return prefs, nil
}

// UpdatePreferences validates the whole form and sends only the fields that
// differ from before.
func (s *Service) UpdatePreferences(ctx context.Context, before, after form.PreferencesForm) (schedule.Preferences, error) {
	if err := after.Validate(); err != nil {
		return schedule.Preferences{}, err
	}

	prefs := after.Preferences()
	changes, err := diff.Diff(before.Preferences().Update(), prefs.Update())
	if err != nil {
		return schedule.Preferences{}, err
	}
	if len(changes) == 0 {
		return prefs, nil
	}

	if err := s.backend.UpdatePreferences(ctx, changes); err != nil {
		return schedule.Preferences{}, err
	}

	s.logger.Info("preferences updated", "fields", len(changes))
	return prefs, nil
}
