package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fastfeet/internal/core/ports"
)

// Channel delivers one notification over a concrete transport.
type Channel interface {
	// Name identifies the channel in the notifications table.
	Name() string

	// Send delivers the notification. An error marks the attempt as
	// failed; it is never retried.
	Send(ctx context.Context, notification ports.Notification) error
}

// ConsoleChannel writes notifications to the log. It stands in for a real
// recipient-facing channel in development and always succeeds.
type ConsoleChannel struct {
	logger *slog.Logger
}

// NewConsoleChannel creates a channel logging every notification.
func NewConsoleChannel(logger *slog.Logger) *ConsoleChannel {
	return &ConsoleChannel{logger: logger.With("component", "console_notification")}
}

// Name identifies the console channel.
func (c *ConsoleChannel) Name() string {
	return "console"
}

// Send logs the notification.
func (c *ConsoleChannel) Send(ctx context.Context, notification ports.Notification) error {
	c.logger.InfoContext(ctx, "Recipient notification",
		"orderId", notification.OrderID.String(),
		"recipientId", notification.RecipientID.String(),
		"status", notification.Status.String(),
		"payload", notification.Payload,
	)
	return nil
}

const webhookTimeout = 5 * time.Second

// WebhookChannel POSTs the notification payload to a configured URL.
// Any transport error or non-2xx response counts as a failed delivery.
type WebhookChannel struct {
	url    string
	client *http.Client
}

// NewWebhookChannel creates a channel posting to the given URL.
func NewWebhookChannel(url string) *WebhookChannel {
	return &WebhookChannel{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// Name identifies the webhook channel.
func (c *WebhookChannel) Name() string {
	return "webhook"
}

// Send POSTs the notification payload as JSON.
func (c *WebhookChannel) Send(ctx context.Context, notification ports.Notification) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url,
		bytes.NewBufferString(notification.Payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
