package user

import (
	"errors"
	"fmt"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when using an improperly initialized User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// Role distinguishes the two actor classes of the system.
type Role string

const (
	// RoleAdmin operates the distribution point: manages couriers,
	// recipients, orders, and dispatching.
	RoleAdmin Role = "ADMIN"

	// RoleCourier performs deliveries: withdraws, delivers, and returns
	// orders assigned to them.
	RoleCourier Role = "COURIER"
)

// ParseRole converts a string representation into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCourier:
		return RoleCourier, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	_, err := ParseRole(string(r))
	return err
}

// String returns the persisted name of the role.
func (r Role) String() string {
	return string(r)
}

// User is an authentication identity. Users log in with their CPF and a
// password; the role decides which parts of the API they may call. Courier
// users additionally own a Courier profile linked through UserID.
type User struct {
	id           kernel.UUID
	name         string
	cpf          kernel.CPF
	passwordHash string
	role         Role

	guard kernel.ConstructorGuard
}

// NewUser creates an authentication identity. The password hash must already
// be produced by the password hasher; the aggregate never sees plaintext.
func NewUser(id kernel.UUID, name string, cpf kernel.CPF, passwordHash string, role Role) (*User, error) {
	u := &User{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setCPF(cpf),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
func RestoreUser(id kernel.UUID, name string, cpf kernel.CPF, passwordHash string, role Role) (*User, error) {
	return NewUser(id, name, cpf, passwordHash, role)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// CPF returns the user's normalized CPF.
func (u *User) CPF() kernel.CPF {
	return u.cpf
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// ChangeName replaces the display name.
func (u *User) ChangeName(name string) error {
	return u.setName(name)
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setCPF(cpf kernel.CPF) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	u.cpf = cpf
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
