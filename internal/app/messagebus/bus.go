package messagebus

import (
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain"
	"log/slog"
	"sync"
)

var ErrClosed = errors.New("message bus is closed")

type EventHandler func(event domain.Event) error

// MessageBus fans domain events out to the handlers registered for their
// type. Every handler runs on its own goroutine.
type MessageBus struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	wg       sync.WaitGroup
	closed   bool
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}

	for _, event := range events {
		handlers := b.handlers[event.Type()]
		if len(handlers) == 0 {
			b.logger.Debug("no handlers for event", "type", event.Type())
			continue
		}

		for _, handler := range handlers {
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				if err := handler(event); err != nil {
					b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
				}
			}()
		}
	}
	return nil
}

// Wait blocks until the handlers that are still running return.
func (b *MessageBus) Wait() {
	b.wg.Wait()
}

// Close rejects further events and waits for the running handlers.
func (b *MessageBus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.wg.Wait()
}
