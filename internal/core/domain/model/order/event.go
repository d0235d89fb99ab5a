package order

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// EventType tags a DeliveryEvent with the transition it records.
type EventType string

const (
	EventCreated   EventType = "CREATED"
	EventAwaiting  EventType = "AWAITING"
	EventWithdrawn EventType = "WITHDRAWN"
	EventDelivered EventType = "DELIVERED"
	EventReturned  EventType = "RETURNED"
)

// Validate checks that the event type is one of the known tags.
func (t EventType) Validate() error {
	switch t {
	case EventCreated, EventAwaiting, EventWithdrawn, EventDelivered, EventReturned:
		return nil
	default:
		return errs.NewValueIsInvalidError("eventType")
	}
}

// ErrDeliveryEventIsNotConstructed is returned when a DeliveryEvent instance
// was not created through one of the constructor functions.
var ErrDeliveryEventIsNotConstructed = errors.New(
	"DeliveryEvent must be created via NewDeliveryEvent or RestoreDeliveryEvent")

// DeliveryEvent is an append-only audit record of an order transition.
// One event is written per transition; events are never updated or deleted,
// so the event stream is the authoritative full timeline of an order even
// when the order's own write-once timestamps only retain the last occurrence
// of each phase.
type DeliveryEvent struct {
	id        kernel.UUID
	orderID   kernel.UUID
	eventType EventType
	payload   string
	createdAt time.Time

	guard kernel.ConstructorGuard
}

// NewDeliveryEvent creates an audit record for a transition that just
// happened on the given order. The payload is an opaque string (usually
// JSON) carrying transition context such as a return reason.
func NewDeliveryEvent(orderID kernel.UUID, eventType EventType, payload string, now time.Time) (*DeliveryEvent, error) {
	if err := errors.Join(
		orderID.Validate(),
		eventType.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryEvent{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		eventType: eventType,
		payload:   payload,
		createdAt: now,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryEvent reconstructs a DeliveryEvent from persistence.
func RestoreDeliveryEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	eventType EventType,
	payload string,
	createdAt time.Time,
) (*DeliveryEvent, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		eventType.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryEvent{
		id:        id,
		orderID:   orderID,
		eventType: eventType,
		payload:   payload,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// ID returns the event's unique identifier.
func (e *DeliveryEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order this event belongs to.
func (e *DeliveryEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Type returns the transition tag of the event.
func (e *DeliveryEvent) Type() EventType {
	return e.eventType
}

// Payload returns the opaque transition context.
func (e *DeliveryEvent) Payload() string {
	return e.payload
}

// CreatedAt returns when the transition was recorded.
func (e *DeliveryEvent) CreatedAt() time.Time {
	return e.createdAt
}

// Validate ensures the event was properly constructed.
func (e *DeliveryEvent) Validate() error {
	if e == nil {
		return ErrDeliveryEventIsNotConstructed
	}
	return e.guard.Validate(ErrDeliveryEventIsNotConstructed)
}
