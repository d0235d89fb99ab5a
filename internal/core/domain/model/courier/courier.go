package courier

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// Domain errors for courier operations.
var (
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleIsRequired is returned when attempting to create a courier without a vehicle.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery agent. It wraps a User of role COURIER
// with delivery-specific attributes and is referenced by orders for
// assignment and ownership checks.
//
// Business rules:
//   - Courier must have a valid UUID and a valid user reference
//   - Exactly one courier profile exists per courier user
//   - Phone and vehicle must be non-empty
type Courier struct {
	// id uniquely identifies the courier profile
	id kernel.UUID
	// userID references the authentication identity behind this courier
	userID kernel.UUID
	// phone is the courier's contact number
	phone string
	// vehicle describes what the courier delivers with
	vehicle string
	// guard ensures the courier was properly constructed
	guard kernel.ConstructorGuard
}

// NewCourier creates a new Courier profile for the given user.
//
// Parameters:
//   - id: Unique identifier for the courier profile (must be valid UUID)
//   - userID: The backing user identity (must be valid UUID)
//   - phone: Contact number (must be non-empty)
//   - vehicle: Vehicle description (must be non-empty)
//
// Returns:
//   - *Courier: A fully initialized courier
//   - error: Validation error if any parameter is invalid
func NewCourier(id kernel.UUID, userID kernel.UUID, phone, vehicle string) (*Courier, error) {
	courier := &Courier{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setUserID(userID),
		courier.setPhone(phone),
		courier.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.UUID, userID kernel.UUID, phone, vehicle string) (*Courier, error) {
	return NewCourier(id, userID, phone, vehicle)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier profile's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// UserID returns the identifier of the backing user identity.
func (c *Courier) UserID() kernel.UUID {
	return c.userID
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// Vehicle returns the courier's vehicle description.
func (c *Courier) Vehicle() string {
	return c.vehicle
}

// ChangePhone replaces the contact number.
func (c *Courier) ChangePhone(phone string) error {
	return c.setPhone(phone)
}

// ChangeVehicle replaces the vehicle description.
func (c *Courier) ChangeVehicle(vehicle string) error {
	return c.setVehicle(vehicle)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setVehicle(vehicle string) error {
	if strings.TrimSpace(vehicle) == "" {
		return ErrVehicleIsRequired
	}
	c.vehicle = vehicle
	return nil
}
