package notify_test

import (
	"context"
	"sync"
	"testing"

	"fastfeet/internal/adapters/out/notify"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGateway collects dispatched notifications, optionally blocking
// until released so tests can fill the queue deterministically.
type recordingGateway struct {
	mu       sync.Mutex
	received []ports.Notification

	started chan struct{}
	release chan struct{}
}

func (g *recordingGateway) Dispatch(_ context.Context, notification ports.Notification) error {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.received = append(g.received, notification)
	return nil
}

func (g *recordingGateway) all() []ports.Notification {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]ports.Notification(nil), g.received...)
}

func TestAsyncNotifier_DeliversInOrder(t *testing.T) {
	gateway := &recordingGateway{}
	notifier := notify.NewAsyncNotifier(gateway, 16, discardLogger())

	first := testNotification()
	second := testNotification()
	third := testNotification()

	notifier.Dispatch(first)
	notifier.Dispatch(second)
	notifier.Dispatch(third)
	notifier.Close()

	received := gateway.all()
	require.Len(t, received, 3)
	assert.True(t, first.OrderID.IsEqual(received[0].OrderID))
	assert.True(t, second.OrderID.IsEqual(received[1].OrderID))
	assert.True(t, third.OrderID.IsEqual(received[2].OrderID))
}

func TestAsyncNotifier_DropsWhenQueueFull(t *testing.T) {
	gateway := &recordingGateway{
		started: make(chan struct{}, 3),
		release: make(chan struct{}),
	}
	notifier := notify.NewAsyncNotifier(gateway, 1, discardLogger())

	inFlight := testNotification()
	queued := testNotification()
	dropped := testNotification()

	// The consumer picks this one up and blocks inside the gateway.
	notifier.Dispatch(inFlight)
	<-gateway.started

	// Fills the queue; the next dispatch has nowhere to go.
	notifier.Dispatch(queued)
	notifier.Dispatch(dropped)

	close(gateway.release)
	notifier.Close()

	received := gateway.all()
	require.Len(t, received, 2)
	assert.True(t, inFlight.OrderID.IsEqual(received[0].OrderID))
	assert.True(t, queued.OrderID.IsEqual(received[1].OrderID))
}

func TestAsyncNotifier_CloseTwiceIsSafe(t *testing.T) {
	notifier := notify.NewAsyncNotifier(&recordingGateway{}, 1, discardLogger())
	notifier.Close()
	notifier.Close()
}
