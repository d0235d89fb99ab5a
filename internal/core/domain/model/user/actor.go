package user

import (
	"fastfeet/internal/core/domain/model/kernel"
)

// Actor is the authenticated identity performing an operation. It is a
// closed sum over the two actor classes, so operations can state in their
// signatures which kind of actor they accept instead of inspecting a
// generic token payload at runtime.
//
// The interface is sealed: only AdminActor and CourierActor implement it.
type Actor interface {
	// UserID returns the subject identity behind the actor.
	UserID() kernel.UUID

	// Role returns the actor's role.
	Role() Role

	isActor()
}

// AdminActor is an operator of the distribution point.
type AdminActor struct {
	userID kernel.UUID
}

// NewAdminActor creates an admin actor for the given user identity.
func NewAdminActor(userID kernel.UUID) (AdminActor, error) {
	if err := userID.Validate(); err != nil {
		return AdminActor{}, err
	}
	return AdminActor{userID: userID}, nil
}

func (a AdminActor) UserID() kernel.UUID { return a.userID }
func (a AdminActor) Role() Role          { return RoleAdmin }
func (a AdminActor) isActor()            {}

// CourierActor is a delivery agent. Courier-initiated operations resolve the
// courier profile from the actor's user identity before touching an order.
type CourierActor struct {
	userID kernel.UUID
}

// NewCourierActor creates a courier actor for the given user identity.
func NewCourierActor(userID kernel.UUID) (CourierActor, error) {
	if err := userID.Validate(); err != nil {
		return CourierActor{}, err
	}
	return CourierActor{userID: userID}, nil
}

func (a CourierActor) UserID() kernel.UUID { return a.userID }
func (a CourierActor) Role() Role          { return RoleCourier }
func (a CourierActor) isActor()            {}

// ActorFor builds the actor matching the user's role.
func ActorFor(u *User) (Actor, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.Role() == RoleAdmin {
		return NewAdminActor(u.ID())
	}
	return NewCourierActor(u.ID())
}
