package plannerapp

import (
	"context"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	reminderapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/reminder"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"strconv"
	"time"
)

type EventSubmission struct {
	Event     *backend.Event  `json:"event"`
	Events    []backend.Event `json:"events"`
	Scheduled int             `json:"reminders_scheduled"`
}

type TaskSubmission struct {
	Task      *backend.Task  `json:"task"`
	Tasks     []backend.Task `json:"tasks"`
	Scheduled int            `json:"reminders_scheduled"`
}

// SubmitEvent creates the event, or updates it when editID is set, then
// reloads the active events and reschedules their reminders. An invalid
// form never reaches the API.
func (s *Service) SubmitEvent(ctx context.Context, ownerID string, f form.EventForm, editID int, now time.Time) (*EventSubmission, error) {
	f = f.Normalize()
	if err := f.Validate(now.In(s.loc)); err != nil {
		return nil, err
	}

	var (
		ev  *backend.Event
		err error
	)
	if editID > 0 {
		ev, err = s.backend.UpdateEvent(ctx, editID, f)
	} else {
		ev, err = s.backend.CreateEvent(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	out := &EventSubmission{Event: ev}
	out.Events, err = s.backend.ActiveEvents(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh events", "owner_id", ownerID, "err", err)
		return out, nil
	}
	out.Scheduled = s.scheduleEvents(ownerID, out.Events)
	return out, nil
}

// SubmitTask is the task counterpart of SubmitEvent.
func (s *Service) SubmitTask(ctx context.Context, ownerID string, f form.TaskForm, editID int, now time.Time) (*TaskSubmission, error) {
	f = f.Normalize()
	if err := f.Validate(now.In(s.loc)); err != nil {
		return nil, err
	}

	var (
		task *backend.Task
		err  error
	)
	if editID > 0 {
		task, err = s.backend.UpdateTask(ctx, editID, f)
	} else {
		task, err = s.backend.CreateTask(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	out := &TaskSubmission{Task: task}
	out.Tasks, err = s.backend.Tasks(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh tasks", "owner_id", ownerID, "err", err)
		return out, nil
	}
	out.Scheduled = s.scheduleTasks(ownerID, out.Tasks)
	return out, nil
}

// RefreshReminders reloads both lists of the user and reschedules every
// reminder. It returns how many timers are pending afterwards.
func (s *Service) RefreshReminders(ctx context.Context, ownerID string) (int, error) {
	events, err := s.backend.ActiveEvents(ctx)
	if err != nil {
		return 0, err
	}
	tasks, err := s.backend.Tasks(ctx)
	if err != nil {
		return 0, err
	}
	return s.scheduleEvents(ownerID, events) + s.scheduleTasks(ownerID, tasks), nil
}

func (s *Service) scheduleEvents(ownerID string, events []backend.Event) int {
	list := make([]*reminder.Reminder, 0, 2*len(events))
	for _, e := range events {
		if e.Archived {
			continue
		}
		start, err := form.ParseDateTime(e.StartTime, s.loc)
		if err != nil {
			s.logger.Debug("skipping event with unreadable start", "event_id", e.ID, "start_time", e.StartTime)
			continue
		}
		end, err := form.ParseDateTime(e.EndTime, s.loc)
		if err != nil {
			s.logger.Debug("skipping event with unreadable end", "event_id", e.ID, "end_time", e.EndTime)
			continue
		}
		list = append(list, reminder.ForEvent(ownerID, strconv.Itoa(e.ID), e.Title, e.Description, start, end)...)
	}
	return s.replace(ownerID, reminderapp.ScopeEvents, list)
}

func (s *Service) scheduleTasks(ownerID string, tasks []backend.Task) int {
	list := make([]*reminder.Reminder, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed || t.Archived {
			continue
		}
		due, err := form.TaskForm{DueDate: t.DueDate}.Due(s.loc)
		if err != nil {
			s.logger.Debug("skipping task with unreadable due date", "task_id", t.ID, "due_date", t.DueDate)
			continue
		}
		list = append(list, reminder.ForTask(ownerID, strconv.Itoa(t.ID), t.Title, t.Description, form.PriorityFor(t.Importance), due))
	}
	return s.replace(ownerID, reminderapp.ScopeTasks, list)
}

func (s *Service) replace(ownerID string, scope reminderapp.Scope, list []*reminder.Reminder) int {
	n, err := s.reminders.Replace(ownerID, scope, list)
	if err != nil {
		s.logger.Warn("failed to reschedule reminders", "owner_id", ownerID, "scope", scope, "err", err)
	}
	return n
}
