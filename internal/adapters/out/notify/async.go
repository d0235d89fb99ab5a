package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fastfeet/internal/core/ports"
)

const dispatchTimeout = 10 * time.Second

// AsyncNotifier decouples notification delivery from the request path.
// Dispatch enqueues without blocking; a single consumer goroutine drains
// the queue through the gateway. When the queue is full the notification
// is dropped with a warning, keeping transitions unaffected no matter how
// slow the channel is.
type AsyncNotifier struct {
	gateway ports.NotificationGateway
	queue   chan ports.Notification
	logger  *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewAsyncNotifier creates a notifier with the given queue capacity and
// starts its consumer goroutine.
func NewAsyncNotifier(gateway ports.NotificationGateway, bufferSize int, logger *slog.Logger) *AsyncNotifier {
	notifier := &AsyncNotifier{
		gateway: gateway,
		queue:   make(chan ports.Notification, bufferSize),
		logger:  logger.With("component", "async_notifier"),
		done:    make(chan struct{}),
	}

	go notifier.consume()
	return notifier
}

// Dispatch enqueues a notification without blocking. A full queue drops
// the notification with a warning.
func (n *AsyncNotifier) Dispatch(notification ports.Notification) {
	select {
	case n.queue <- notification:
	default:
		n.logger.Warn("Notification queue full, dropping",
			"orderId", notification.OrderID.String(),
			"status", notification.Status.String(),
		)
	}
}

// Close stops accepting notifications, drains the queue, and waits until
// the consumer finishes. Safe to call more than once.
func (n *AsyncNotifier) Close() {
	n.closeOnce.Do(func() {
		close(n.queue)
		<-n.done
	})
}

func (n *AsyncNotifier) consume() {
	defer close(n.done)

	for notification := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		if err := n.gateway.Dispatch(ctx, notification); err != nil {
			n.logger.Warn("Notification dispatch failed",
				"orderId", notification.OrderID.String(),
				"error", err,
			)
		}
		cancel()
	}
}
