package order

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a parcel delivery task in the system. It is the aggregate
// root that manages the order lifecycle from creation through dispatch,
// pickup, and final delivery or return.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and recipient reference
//   - Must carry a valid tracking code
//   - Status transitions follow the state machine defined on Status
//   - A courier must be assigned whenever the status is Withdrawn,
//     Delivered, or Returned
//   - Transition timestamps are write-once: once set they are never
//     cleared, even when a returned order cycles back to Awaiting
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// recipientID references the delivery destination profile
	recipientID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// trackingCode is the short human-shareable identifier
	trackingCode TrackingCode

	// status represents the current state in the order lifecycle
	status Status

	// description is optional free text about the parcel
	description string

	// deliveryPhoto is the proof-of-delivery reference, set only on delivery
	deliveryPhoto string

	// transition timestamps, nil until the transition first occurs
	awaitingAt  *time.Time
	withdrawnAt *time.Time
	deliveredAt *time.Time
	returnedAt  *time.Time

	// guard ensures the order was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid new order, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - recipientID: The recipient the parcel is addressed to
//   - courierID: Optional pre-assigned courier (nil means unassigned)
//   - description: Optional free text
//
// The order starts in Pending status with a freshly generated tracking code.
func NewOrder(id kernel.UUID, recipientID kernel.UUID, courierID *kernel.UUID, description string) (*Order, error) {
	order := &Order{
		trackingCode: GenerateTrackingCode(),
		status:       Pending,
		description:  description,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRecipientID(recipientID),
		order.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts the full persisted state and re-checks cross-field invariants so a
// corrupted row cannot materialize as a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	recipientID kernel.UUID,
	courierID *kernel.UUID,
	trackingCode TrackingCode,
	status Status,
	description string,
	deliveryPhoto string,
	awaitingAt *time.Time,
	withdrawnAt *time.Time,
	deliveredAt *time.Time,
	returnedAt *time.Time,
) (*Order, error) {
	order := &Order{
		description:   description,
		deliveryPhoto: deliveryPhoto,
		awaitingAt:    awaitingAt,
		withdrawnAt:   withdrawnAt,
		deliveredAt:   deliveredAt,
		returnedAt:    returnedAt,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRecipientID(recipientID),
		order.setCourierID(courierID),
		order.setTrackingCode(trackingCode),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHaveCourier(order.courierID != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RecipientID returns the identifier of the addressed recipient.
func (o *Order) RecipientID() kernel.UUID {
	return o.recipientID
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// TrackingCode returns the order's human-shareable tracking code.
func (o *Order) TrackingCode() TrackingCode {
	return o.trackingCode
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Description returns the optional free-text description.
func (o *Order) Description() string {
	return o.description
}

// DeliveryPhoto returns the proof-of-delivery reference, empty until the
// order is delivered.
func (o *Order) DeliveryPhoto() string {
	return o.deliveryPhoto
}

// AwaitingAt returns when the order last became Awaiting, nil if never.
func (o *Order) AwaitingAt() *time.Time {
	return o.awaitingAt
}

// WithdrawnAt returns when the order was last withdrawn, nil if never.
func (o *Order) WithdrawnAt() *time.Time {
	return o.withdrawnAt
}

// DeliveredAt returns when the order was delivered, nil if never.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ReturnedAt returns when the order was last returned, nil if never.
func (o *Order) ReturnedAt() *time.Time {
	return o.returnedAt
}

// MarkAwaiting releases the order for pickup.
//
// Allowed from Pending (initial dispatch) and Returned (re-dispatch).
// The awaiting timestamp is refreshed on every entry into Awaiting, while
// timestamps of previous phases are kept as an audit trail.
func (o *Order) MarkAwaiting(now time.Time) error {
	newStatus, err := o.status.MarkAwaiting()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.awaitingAt = &now
	return nil
}

// Withdraw marks the order as picked up by the given courier.
//
// This method enforces the following business rules:
//   - The courier ID must be valid
//   - The order must be in Awaiting status
//   - If the order already has an assigned courier, only that courier may
//     withdraw it; an unassigned order is claimed by whoever withdraws it
//
// Returns:
//   - nil on success
//   - error if the transition is not allowed or the courier does not match
func (o *Order) Withdraw(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil && !o.courierID.IsEqual(courierID) {
		return errs.NewOperationForbiddenError("withdraw", "order is assigned to another courier")
	}

	newStatus, err := o.status.Withdraw()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.withdrawnAt = &now
	return nil
}

// Deliver marks the order as handed to the recipient, recording the
// proof-of-delivery photo reference.
//
// This method enforces the following business rules:
//   - The order must be in Withdrawn status
//   - Only the assigned courier may deliver (a withdrawn order always has
//     an assignment)
//   - The photo reference is required
func (o *Order) Deliver(courierID kernel.UUID, photoPath string, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if photoPath == "" {
		return errs.NewValueIsRequiredError("deliveryPhoto")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if err := o.validateAssignedTo(courierID, "deliver"); err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPhoto = photoPath
	o.deliveredAt = &now
	return nil
}

// Return marks the order as brought back to the distribution point by the
// assigned courier. The order may later be re-dispatched via MarkAwaiting.
func (o *Order) Return(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	if err := o.validateAssignedTo(courierID, "return"); err != nil {
		return err
	}

	o.status = newStatus
	o.returnedAt = &now
	return nil
}

// ChangeRecipient re-addresses the order to a different recipient.
func (o *Order) ChangeRecipient(recipientID kernel.UUID) error {
	return o.setRecipientID(recipientID)
}

// ChangeCourier reassigns or unassigns the courier. Unassigning is rejected
// for statuses that require an assignment.
func (o *Order) ChangeCourier(courierID *kernel.UUID) error {
	if err := o.status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	return o.setCourierID(courierID)
}

// ChangeDescription replaces the free-text description.
func (o *Order) ChangeDescription(description string) {
	o.description = description
}

// validateAssignedTo checks that the order is assigned to the given courier.
// Used by transitions that only the assigned courier may perform.
func (o *Order) validateAssignedTo(courierID kernel.UUID, operation string) error {
	if o.courierID == nil {
		return errs.NewOperationForbiddenError(operation, "order has no assigned courier")
	}
	if !o.courierID.IsEqual(courierID) {
		return errs.NewOperationForbiddenError(operation, "order is assigned to another courier")
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRecipientID validates and sets the addressed recipient.
func (o *Order) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	o.recipientID = recipientID
	return nil
}

// setCourierID validates and sets the optional courier assignment.
func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		o.courierID = nil
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	o.courierID = courierID
	return nil
}

// setTrackingCode validates and sets the tracking code during restoration.
func (o *Order) setTrackingCode(trackingCode TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}
	o.trackingCode = trackingCode
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
