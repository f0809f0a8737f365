package domain

import (
	"sync"
	"time"
)

// Event is something that happened to an aggregate and is delivered through
// the message bus.
type Event interface {
	Type() string
	PublishedAt() time.Time
}

type NoCopy struct {
	sync.Mutex
}

// Aggregate collects events raised by a domain object until they are popped
// and published.
type Aggregate struct {
	NoCopy
	events []Event
}

func (a *Aggregate) PopEvents() []Event {
	a.Lock()
	defer a.Unlock()

	events := a.events
	a.events = make([]Event, 0)
	return events
}

func (a *Aggregate) PushEvent(e Event) {
	a.Lock()
	defer a.Unlock()

	a.events = append(a.events, e)
}
