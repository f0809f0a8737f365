package reminderapp

import (
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/messagebus"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

type fixture struct {
	clock *fakeClock
	bus   *messagebus.MessageBus
	inbox *Inbox
	sched *Scheduler
}

func newFixture() *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := newFakeClock(start)
	bus := messagebus.New(logger)
	inbox := NewInbox()
	bus.Register(reminder.EventFired, inbox.HandleFired)

	return &fixture{
		clock: clock,
		bus:   bus,
		inbox: inbox,
		sched: NewScheduler(logger, clock, bus),
	}
}

func (f *fixture) advance(d time.Duration) {
	f.clock.Advance(d)
	f.bus.Wait()
}

func TestScheduler_FiresLeadTimeBeforeDue(t *testing.T) {
	f := newFixture()

	_, err := f.sched.Schedule(reminder.ForTask("u1", "1", "Report", "", "high", start.Add(time.Hour)))
	require.NoError(t, err)

	f.advance(49 * time.Minute)
	assert.Empty(t, f.inbox.List("u1"))

	f.advance(time.Minute)
	toasts := f.inbox.List("u1")
	require.Len(t, toasts, 1)
	assert.Equal(t, "Report", toasts[0].Title)
	assert.Equal(t, start.Add(50*time.Minute), toasts[0].FiredAt)
	assert.Zero(t, f.sched.Pending())
}

func TestScheduler_SkipsPassedReminders(t *testing.T) {
	f := newFixture()

	_, err := f.sched.Schedule(reminder.ForTask("u1", "1", "Soon", "", "", start.Add(5*time.Minute)))
	assert.ErrorIs(t, err, ErrAlreadyPassed)
	assert.Zero(t, f.sched.Pending())
}

func TestScheduler_Cancel(t *testing.T) {
	f := newFixture()

	h, err := f.sched.Schedule(reminder.ForTask("u1", "1", "Report", "", "", start.Add(time.Hour)))
	require.NoError(t, err)

	h.Cancel()
	h.Cancel()
	f.advance(2 * time.Hour)

	assert.Empty(t, f.inbox.List("u1"))
}

func TestScheduler_Replace(t *testing.T) {
	f := newFixture()

	old := reminder.ForEvent("u1", "1", "Old", "", start.Add(time.Hour), start.Add(2*time.Hour))
	n, err := f.sched.Replace(old)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	fresh := append(
		reminder.ForEvent("u1", "2", "New", "", start.Add(30*time.Minute), start.Add(90*time.Minute)),
		reminder.ForTask("u1", "9", "Passed", "", "", start.Add(time.Minute)),
	)
	n, err = f.sched.Replace(fresh)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, f.sched.Pending())

	f.advance(time.Hour)
	f.advance(2 * time.Hour)

	toasts := f.inbox.List("u1")
	require.Len(t, toasts, 2)
	assert.Equal(t, "New", toasts[0].Title)
	assert.Equal(t, reminder.KindEventStart, toasts[0].Kind)
	assert.Equal(t, reminder.KindEventEnd, toasts[1].Kind)
}

func TestScheduler_ConcurrentReplaceKeepsOneList(t *testing.T) {
	f := newFixture()

	list := make([]*reminder.Reminder, 0, 300)
	for i := 0; i < 150; i++ {
		at := start.Add(time.Hour + time.Duration(i)*time.Minute)
		list = append(list, reminder.ForEvent("u1", strconv.Itoa(i), "Event", "", at, at.Add(time.Hour))...)
	}

	gate := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-gate
			n, err := f.sched.Replace(list)
			assert.NoError(t, err)
			assert.Equal(t, len(list), n)
		}()
	}
	close(gate)
	wg.Wait()

	assert.Equal(t, len(list), f.sched.Pending())
}

func TestScheduler_ReplaceAfterClose(t *testing.T) {
	f := newFixture()
	f.sched.Close()

	n, err := f.sched.Replace(reminder.ForEvent("u1", "1", "Late", "", start.Add(time.Hour), start.Add(2*time.Hour)))
	assert.ErrorIs(t, err, reminder.ErrSchedulerClosed)
	assert.Zero(t, n)
	assert.Zero(t, f.sched.Pending())
}

func TestScheduler_Close(t *testing.T) {
	f := newFixture()

	_, err := f.sched.Schedule(reminder.ForTask("u1", "1", "Report", "", "", start.Add(time.Hour)))
	require.NoError(t, err)

	f.sched.Close()
	f.advance(2 * time.Hour)
	assert.Empty(t, f.inbox.List("u1"))

	_, err = f.sched.Schedule(reminder.ForTask("u1", "2", "Late", "", "", start.Add(5*time.Hour)))
	assert.ErrorIs(t, err, reminder.ErrSchedulerClosed)
}

func TestScheduler_Snooze(t *testing.T) {
	f := newFixture()

	_, err := f.sched.Snooze(reminder.Toast{ID: "t1", OwnerID: "u1"}, 0)
	assert.ErrorIs(t, err, reminder.ErrInvalidSnooze)

	_, err = f.sched.Snooze(reminder.Toast{ID: "t1", OwnerID: "u1", Title: "Report"}, 5)
	require.NoError(t, err)

	f.advance(4 * time.Minute)
	assert.Empty(t, f.inbox.List("u1"))
	f.advance(time.Minute)
	require.Len(t, f.inbox.List("u1"), 1)
	assert.Equal(t, reminder.KindSnoozed, f.inbox.List("u1")[0].Kind)
}
