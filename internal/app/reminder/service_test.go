package reminderapp

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToastLifecycle(t *testing.T) {
	f := newFixture()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.clock, f.bus, f.inbox)
	defer svc.Close()

	n, err := svc.Replace("u1", ScopeTasks, []*reminder.Reminder{
		reminder.ForTask("u1", "1", "One", "", "", start.Add(20*time.Minute)),
		reminder.ForTask("u1", "2", "Two", "", "", start.Add(30*time.Minute)),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = svc.Replace("u2", ScopeTasks, []*reminder.Reminder{
		reminder.ForTask("u2", "3", "Other user", "", "", start.Add(20*time.Minute)),
	})
	require.NoError(t, err)

	f.advance(15 * time.Minute)
	f.advance(45 * time.Minute)
	toasts := svc.Toasts("u1")
	require.Len(t, toasts, 2)
	assert.Equal(t, "One", toasts[0].Title)
	assert.Len(t, svc.Toasts("u2"), 1)

	require.NoError(t, svc.Dismiss("u1", toasts[0].ID))
	assert.ErrorIs(t, svc.Dismiss("u1", toasts[0].ID), reminder.ErrToastNotFound)
	assert.ErrorIs(t, svc.Dismiss("u2", toasts[1].ID), reminder.ErrToastNotFound)

	require.NoError(t, svc.Snooze("u1", toasts[1].ID, 10))
	assert.Empty(t, svc.Toasts("u1"))

	f.advance(10 * time.Minute)
	again := svc.Toasts("u1")
	require.Len(t, again, 1)
	assert.Equal(t, "Two", again[0].Title)
	assert.NotEqual(t, toasts[1].ID, again[0].ID)
}

func TestService_SnoozeRejectsBadInput(t *testing.T) {
	f := newFixture()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.clock, f.bus, f.inbox)

	f.inbox.Push(reminder.Toast{ID: "t1", OwnerID: "u1"})

	assert.ErrorIs(t, svc.Snooze("u1", "t1", -1), reminder.ErrInvalidSnooze)
	assert.Len(t, svc.Toasts("u1"), 1)
	assert.ErrorIs(t, svc.Snooze("u1", "missing", 5), reminder.ErrToastNotFound)
}

func TestService_ScopesAreIndependent(t *testing.T) {
	f := newFixture()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.clock, f.bus, f.inbox)
	defer svc.Close()

	_, err := svc.Replace("u1", ScopeTasks, []*reminder.Reminder{
		reminder.ForTask("u1", "1", "Task", "", "", start.Add(20*time.Minute)),
	})
	require.NoError(t, err)

	_, err = svc.Replace("u1", ScopeEvents, reminder.ForEvent("u1", "9", "Standup", "", start.Add(30*time.Minute), start.Add(time.Hour)))
	require.NoError(t, err)

	// refreshing events leaves the task timer alone
	_, err = svc.Replace("u1", ScopeEvents, nil)
	require.NoError(t, err)

	f.advance(time.Hour)
	toasts := svc.Toasts("u1")
	require.Len(t, toasts, 1)
	assert.Equal(t, "Task", toasts[0].Title)
}

func TestService_RejectsAfterClose(t *testing.T) {
	f := newFixture()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.clock, f.bus, f.inbox)

	_, err := svc.Replace("u1", ScopeTasks, []*reminder.Reminder{
		reminder.ForTask("u1", "1", "Task", "", "", start.Add(time.Hour)),
	})
	require.NoError(t, err)
	svc.Close()

	n, err := svc.Replace("u2", ScopeEvents, reminder.ForEvent("u2", "9", "Late", "", start.Add(time.Hour), start.Add(2*time.Hour)))
	assert.ErrorIs(t, err, reminder.ErrSchedulerClosed)
	assert.Zero(t, n)

	f.inbox.Push(reminder.Toast{ID: "t1", OwnerID: "u1"})
	assert.ErrorIs(t, svc.Snooze("u1", "t1", 5), reminder.ErrSchedulerClosed)
	assert.Len(t, svc.Toasts("u1"), 1)

	f.advance(3 * time.Hour)
	assert.Len(t, svc.Toasts("u1"), 1)
}

func TestService_AddKeepsPendingReminders(t *testing.T) {
	f := newFixture()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.clock, f.bus, f.inbox)
	defer svc.Close()

	require.NoError(t, svc.Add("u1", ScopeHealth, reminder.ForHealth("u1", "1", "Vitamins", "", start.Add(time.Hour))))
	require.NoError(t, svc.Add("u1", ScopeHealth, reminder.ForHealth("u1", "2", "Water", "", start.Add(2*time.Hour))))
	assert.ErrorIs(t, svc.Add("u1", ScopeHealth, reminder.ForHealth("u1", "3", "Past", "", start)), ErrAlreadyPassed)

	assert.Equal(t, 2, svc.Pending("u1", ScopeHealth))
	assert.Zero(t, svc.Pending("u1", ScopeTasks))

	f.advance(time.Hour)
	f.advance(time.Hour)
	toasts := svc.Toasts("u1")
	require.Len(t, toasts, 2)
	assert.Equal(t, reminder.KindHealth, toasts[0].Kind)
	assert.Equal(t, "Vitamins", toasts[0].Title)
	assert.Zero(t, svc.Pending("u1", ScopeHealth))
}
