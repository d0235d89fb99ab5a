package order

import (
	"fmt"

	"fastfeet/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Awaiting ──> Withdrawn ──┬──> Delivered
//	               ^                     │
//	               │                     └──> Returned
//	               └──────────────────────────────┘
//	                  (returned orders re-enter Awaiting)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status have not yet been released for pickup.
	Pending

	// Awaiting indicates the order is ready at the distribution point
	// and waiting for a courier to withdraw it.
	Awaiting

	// Withdrawn indicates a courier has picked the order up and is
	// carrying it to the recipient.
	Withdrawn

	// Delivered indicates the order reached the recipient.
	// This is a final state with no further transitions allowed.
	Delivered

	// Returned indicates the courier brought the order back to the
	// distribution point. Returned orders may be re-dispatched, which
	// moves them back to Awaiting.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Awaiting:  "AWAITING",
		Withdrawn: "WITHDRAWN",
		Delivered: "DELIVERED",
		Returned:  "RETURNED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Awaiting:  "AWAITING",
		Withdrawn: "WITHDRAWN",
		Delivered: "DELIVERED",
		Returned:  "RETURNED",
	}
}

// ParseStatus converts a string representation into a Status.
// Used when reconstructing orders from persistence and when parsing
// status filters supplied by API clients.
//
// Returns:
//   - the matching Status for a valid representation
//   - error if the string does not name a valid status
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Awaiting, Withdrawn, Delivered, Returned.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns:
//   - "PENDING", "AWAITING", "WITHDRAWN", "DELIVERED", or "RETURNED"
//     for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Withdrawn, Delivered, and Returned orders must have a courier assigned
//   - Pending and Awaiting orders may or may not have one (pre-assignment
//     is allowed)
//
// Parameters:
//   - courier: whether the order has a courier assigned
//
// Returns:
//   - error: validation error if status and courier assignment are inconsistent
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if !courier && (s == Withdrawn || s == Delivered || s == Returned) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// MarkAwaiting transitions the status to Awaiting.
//
// Valid transitions:
//   - Pending -> Awaiting (initial dispatch)
//   - Returned -> Awaiting (re-dispatch after a return)
//
// Returns:
//   - (Awaiting, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.MarkAwaiting() to enforce state transitions.
func (s Status) MarkAwaiting() (Status, error) {
	if s != Pending && s != Returned {
		return 0, errs.NewInvalidTransitionError("mark awaiting", s.String())
	}

	return Awaiting, nil
}

// Withdraw transitions the status to Withdrawn.
//
// Valid transitions:
//   - Awaiting -> Withdrawn (courier picks the order up)
//
// Returns:
//   - (Withdrawn, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Withdraw() to enforce state transitions.
func (s Status) Withdraw() (Status, error) {
	if s != Awaiting {
		return 0, errs.NewInvalidTransitionError("withdraw", s.String())
	}

	return Withdrawn, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Withdrawn -> Delivered (order handed to the recipient)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Deliver() to enforce state transitions.
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Withdrawn {
		return 0, errs.NewInvalidTransitionError("deliver", s.String())
	}

	return Delivered, nil
}

// Return transitions the status to Returned.
//
// Valid transitions:
//   - Withdrawn -> Returned (courier brings the order back)
//
// Returns:
//   - (Returned, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Return() to enforce state transitions.
// Returned orders can re-enter Awaiting via MarkAwaiting.
func (s Status) Return() (Status, error) {
	if s != Withdrawn {
		return 0, errs.NewInvalidTransitionError("return", s.String())
	}

	return Returned, nil
}
