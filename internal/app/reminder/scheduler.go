package reminderapp

import (
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/messagebus"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"log/slog"
	"sync"
	"time"
)

var ErrAlreadyPassed = errors.New("reminder trigger time has passed")

type Publisher interface {
	PublishEvents(events ...domain.Event) error
}

// Handle cancels one scheduled reminder. Cancelling twice, or after the
// reminder fired, does nothing.
type Handle struct {
	s  *Scheduler
	id uint64
}

func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.s.cancel(h.id)
}

type pending struct {
	reminder *reminder.Reminder
	timer    Timer
}

// Scheduler owns the reminder timers of one user.
type Scheduler struct {
	logger *slog.Logger
	clock  Clock
	bus    Publisher

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]pending
	closed  bool
}

func NewScheduler(logger *slog.Logger, clock Clock, bus Publisher) *Scheduler {
	return &Scheduler{
		logger:  logger,
		clock:   clock,
		bus:     bus,
		pending: make(map[uint64]pending),
	}
}

func (s *Scheduler) Schedule(r *reminder.Reminder) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.schedule(r)
}

// Replace cancels every outstanding reminder and schedules the given ones
// under a single lock, so overlapping replaces never leave both lists
// pending. It returns how many were scheduled; reminders whose trigger time
// already passed are skipped.
func (s *Scheduler) Replace(reminders []*reminder.Reminder) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, reminder.ErrSchedulerClosed
	}
	s.cancelAllLocked()

	scheduled := 0
	for _, r := range reminders {
		_, err := s.schedule(r)
		switch {
		case errors.Is(err, ErrAlreadyPassed):
			continue
		case err != nil:
			return scheduled, err
		}
		scheduled++
	}
	return scheduled, nil
}

// schedule requires s.mu.
func (s *Scheduler) schedule(r *reminder.Reminder) (*Handle, error) {
	if s.closed {
		return nil, reminder.ErrSchedulerClosed
	}

	now := s.clock.Now()
	if !r.Due(now) {
		return nil, ErrAlreadyPassed
	}

	s.nextID++
	id := s.nextID
	timer := s.clock.AfterFunc(r.TriggerAt().Sub(now), func() {
		s.fire(id)
	})
	s.pending[id] = pending{reminder: r, timer: timer}

	s.logger.Debug("reminder scheduled", "reminder_id", r.ID, "trigger_at", r.TriggerAt())
	return &Handle{s: s, id: id}, nil
}

// Snooze shows the toast again after the given number of minutes.
func (s *Scheduler) Snooze(t reminder.Toast, minutes int) (*Handle, error) {
	if minutes <= 0 {
		return nil, reminder.ErrInvalidSnooze
	}
	delay := time.Duration(minutes) * time.Minute
	return s.Schedule(reminder.Snoozed(t, s.clock.Now(), delay))
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Close cancels everything and rejects further scheduling.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAllLocked()
	s.closed = true
}

func (s *Scheduler) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[id]; ok {
		p.timer.Stop()
		delete(s.pending, id)
	}
}

func (s *Scheduler) cancelAllLocked() {
	for id, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, id)
	}
}

func (s *Scheduler) fire(id uint64) {
	s.mu.Lock()
	p, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	p.reminder.Fire(s.clock.Now())
	err := s.bus.PublishEvents(p.reminder.PopEvents()...)
	switch {
	case errors.Is(err, messagebus.ErrClosed):
		s.logger.Debug("reminder fired during shutdown", "reminder_id", p.reminder.ID)
	case err != nil:
		s.logger.Error("failed to publish reminder", "reminder_id", p.reminder.ID, "err", err)
	}
}
