package messagebus

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	kind string
}

func (e testEvent) Type() string           { return e.kind }
func (e testEvent) PublishedAt() time.Time { return time.Time{} }

func newBus() *MessageBus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMessageBus_DeliversToRegisteredHandlers(t *testing.T) {
	bus := newBus()

	var first, second, other atomic.Int32
	bus.Register("a", func(domain.Event) error { first.Add(1); return nil })
	bus.Register("a", func(domain.Event) error { second.Add(1); return errors.New("boom") })
	bus.Register("b", func(domain.Event) error { other.Add(1); return nil })

	require.NoError(t, bus.PublishEvents(testEvent{"a"}, testEvent{"a"}, testEvent{"c"}))
	bus.Wait()

	assert.Equal(t, int32(2), first.Load())
	assert.Equal(t, int32(2), second.Load())
	assert.Equal(t, int32(0), other.Load())
}

func TestMessageBus_WaitIsReusable(t *testing.T) {
	bus := newBus()

	var n atomic.Int32
	bus.Register("a", func(domain.Event) error { n.Add(1); return nil })

	require.NoError(t, bus.PublishEvents(testEvent{"a"}))
	bus.Wait()
	require.NoError(t, bus.PublishEvents(testEvent{"a"}))
	bus.Wait()

	assert.Equal(t, int32(2), n.Load())
}

func TestMessageBus_RejectsAfterClose(t *testing.T) {
	bus := newBus()

	var n atomic.Int32
	bus.Register("a", func(domain.Event) error { n.Add(1); return nil })

	require.NoError(t, bus.PublishEvents(testEvent{"a"}))
	bus.Close()

	assert.ErrorIs(t, bus.PublishEvents(testEvent{"a"}), ErrClosed)
	assert.Equal(t, int32(1), n.Load())
}
