package reminderapp

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"log/slog"
	"sync"
)

// Scope separates the reminder lists of a user so that refreshing one list
// does not cancel the timers of another.
type Scope string

const (
	ScopeEvents  Scope = "events"
	ScopeTasks   Scope = "tasks"
	ScopeHealth  Scope = "health"
	scopeSnoozed Scope = "snoozed"
)

type schedulerKey struct {
	ownerID string
	scope   Scope
}

// Service keeps one scheduler per user and scope, and the shared toast inbox.
type Service struct {
	logger *slog.Logger
	clock  Clock
	bus    Publisher
	inbox  *Inbox

	mu         sync.Mutex
	schedulers map[schedulerKey]*Scheduler
	closed     bool
}

func NewService(logger *slog.Logger, clock Clock, bus Publisher, inbox *Inbox) *Service {
	return &Service{
		logger:     logger,
		clock:      clock,
		bus:        bus,
		inbox:      inbox,
		schedulers: make(map[schedulerKey]*Scheduler),
	}
}

// scheduler returns the scheduler of the owner and scope. Once the service
// is closed it hands out closed schedulers, which reject every reminder.
func (s *Service) scheduler(ownerID string, scope Scope) *Scheduler {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := schedulerKey{ownerID: ownerID, scope: scope}
	sch, ok := s.schedulers[key]
	if !ok {
		sch = NewScheduler(s.logger.With("owner_id", ownerID, "scope", scope), s.clock, s.bus)
		if s.closed {
			sch.Close()
			return sch
		}
		s.schedulers[key] = sch
	}
	return sch
}

// Replace swaps the pending reminders of a user in the given scope for the
// given list.
func (s *Service) Replace(ownerID string, scope Scope, reminders []*reminder.Reminder) (int, error) {
	n, err := s.scheduler(ownerID, scope).Replace(reminders)
	if err != nil {
		return n, err
	}
	s.logger.Info("reminders rescheduled",
		"owner_id", ownerID,
		"scope", scope,
		"scheduled", n,
		"given", len(reminders),
	)
	return n, nil
}

// Add schedules one more reminder next to the pending ones of the scope.
func (s *Service) Add(ownerID string, scope Scope, r *reminder.Reminder) error {
	if _, err := s.scheduler(ownerID, scope).Schedule(r); err != nil {
		return err
	}
	s.logger.Debug("reminder added", "owner_id", ownerID, "scope", scope, "reminder_id", r.ID)
	return nil
}

func (s *Service) Pending(ownerID string, scope Scope) int {
	s.mu.Lock()
	sch, ok := s.schedulers[schedulerKey{ownerID: ownerID, scope: scope}]
	s.mu.Unlock()

	if !ok {
		return 0
	}
	return sch.Pending()
}

func (s *Service) Toasts(ownerID string) []reminder.Toast {
	return s.inbox.List(ownerID)
}

func (s *Service) Dismiss(ownerID, toastID string) error {
	_, err := s.inbox.Take(ownerID, toastID)
	return err
}

// Snooze dismisses a toast and raises it again after the given minutes.
func (s *Service) Snooze(ownerID, toastID string, minutes int) error {
	if minutes <= 0 {
		return reminder.ErrInvalidSnooze
	}

	t, err := s.inbox.Take(ownerID, toastID)
	if err != nil {
		return err
	}

	if _, err := s.scheduler(ownerID, scopeSnoozed).Snooze(t, minutes); err != nil {
		s.inbox.Push(t)
		return err
	}
	return nil
}

// Close cancels every pending reminder. Later calls to Replace and Snooze
// fail with reminder.ErrSchedulerClosed.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for key, sch := range s.schedulers {
		sch.Close()
		delete(s.schedulers, key)
	}
}
