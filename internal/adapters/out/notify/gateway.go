package notify

import (
	"context"
	"log/slog"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"

	"gorm.io/gorm"
)

// GormNotificationGateway implements ports.NotificationGateway. Every
// dispatch attempt is recorded as a notifications row; the success flag
// reflects whether the channel accepted the delivery. A failed delivery is
// logged and recorded but never retried, and never surfaces to the caller.
type GormNotificationGateway struct {
	db      *gorm.DB
	channel Channel
	logger  *slog.Logger
}

// NewGormNotificationGateway creates a gateway recording to the database
// and delivering through the given channel.
func NewGormNotificationGateway(db *gorm.DB, channel Channel, logger *slog.Logger) *GormNotificationGateway {
	return &GormNotificationGateway{
		db:      db,
		channel: channel,
		logger:  logger.With("component", "notification_gateway"),
	}
}

// Dispatch delivers the notification once and records the outcome.
// Returns an error only when the record itself cannot be written.
func (g *GormNotificationGateway) Dispatch(ctx context.Context, notification ports.Notification) error {
	sendErr := g.channel.Send(ctx, notification)
	if sendErr != nil {
		g.logger.WarnContext(ctx, "Notification delivery failed",
			"channel", g.channel.Name(),
			"orderId", notification.OrderID.String(),
			"error", sendErr,
		)
	}

	dto := NotificationDTO{
		ID:          kernel.NewUUID().Bytes(),
		OrderID:     notification.OrderID.Bytes(),
		RecipientID: notification.RecipientID.Bytes(),
		Status:      notification.Status.String(),
		Channel:     g.channel.Name(),
		Payload:     notification.Payload,
		Success:     sendErr == nil,
	}

	return g.db.WithContext(ctx).Create(&dto).Error
}
