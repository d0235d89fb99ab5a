package commands

import (
	"errors"
	"fmt"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 8

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents an operator request to register a courier:
// a COURIER user identity plus its delivery profile, created together.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	cpf       kernel.CPF
	password  string
	phone     string
	vehicle   string

	guard kernel.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier. The raw
// CPF is normalized to digits; the password must satisfy the minimum length.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name, rawCPF, password, phone, vehicle string,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
		cmd.setCPF(rawCPF),
		cmd.setPassword(password),
		cmd.setPhone(phone),
		cmd.setVehicle(vehicle),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier profile.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// CPF returns the normalized login CPF.
func (c CreateCourierCommand) CPF() kernel.CPF {
	return c.cpf
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreateCourierCommand) Password() string {
	return c.password
}

// Phone returns the courier's contact number.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// Vehicle returns the courier's vehicle description.
func (c CreateCourierCommand) Vehicle() string {
	return c.vehicle
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setCPF(rawCPF string) error {
	cpf, err := kernel.NewCPF(rawCPF)
	if err != nil {
		return err
	}
	c.cpf = cpf
	return nil
}

func (c *CreateCourierCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters", minPasswordLength),
		)
	}
	c.password = password
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateCourierCommand) setVehicle(vehicle string) error {
	if strings.TrimSpace(vehicle) == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	c.vehicle = vehicle
	return nil
}
