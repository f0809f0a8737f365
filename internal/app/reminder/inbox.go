package reminderapp

import (
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/samber/lo"
	"sync"
)

// Inbox keeps the fired toasts of every user until they are dismissed.
type Inbox struct {
	mu     sync.Mutex
	toasts map[string][]reminder.Toast
}

func NewInbox() *Inbox {
	return &Inbox{toasts: make(map[string][]reminder.Toast)}
}

// HandleFired is the message bus handler for reminder.fired.
func (i *Inbox) HandleFired(event domain.Event) error {
	fired, ok := event.(*reminder.FiredEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T", event)
	}
	i.Push(fired.Toast)
	return nil
}

func (i *Inbox) Push(t reminder.Toast) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.toasts[t.OwnerID] = append(i.toasts[t.OwnerID], t)
}

func (i *Inbox) List(ownerID string) []reminder.Toast {
	i.mu.Lock()
	defer i.mu.Unlock()

	return append([]reminder.Toast{}, i.toasts[ownerID]...)
}

// Take removes a toast and returns it.
func (i *Inbox) Take(ownerID, toastID string) (reminder.Toast, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	toasts := i.toasts[ownerID]
	t, idx, ok := lo.FindIndexOf(toasts, func(t reminder.Toast) bool {
		return t.ID == toastID
	})
	if !ok {
		return reminder.Toast{}, reminder.ErrToastNotFound
	}

	i.toasts[ownerID] = append(toasts[:idx:idx], toasts[idx+1:]...)
	return t, nil
}
