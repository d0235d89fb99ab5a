package http

import (
	"time"

	"fastfeet/internal/core/application/usecases/queries"
)

// Request bodies.

type loginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	RecipientID string  `json:"recipientId"`
	CourierID   *string `json:"courierId"`
	Description string  `json:"description"`
}

// updateOrderRequest carries partial order changes. Absent fields are left
// untouched; unassignCourier clears the assignment explicitly since JSON
// cannot distinguish a missing courierId from a null one after binding.
type updateOrderRequest struct {
	RecipientID     *string `json:"recipientId"`
	CourierID       *string `json:"courierId"`
	UnassignCourier bool    `json:"unassignCourier"`
	Description     *string `json:"description"`
}

type returnOrderRequest struct {
	Reason string `json:"reason"`
}

type createCourierRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Vehicle  string `json:"vehicle"`
}

type updateCourierRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Vehicle *string `json:"vehicle"`
}

type addressRequest struct {
	Street string `json:"street"`
	Number string `json:"number"`
	City   string `json:"city"`
	State  string `json:"state"`
	CEP    string `json:"cep"`
}

type createRecipientRequest struct {
	Name      string         `json:"name"`
	Address   addressRequest `json:"address"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Latitude  *float64       `json:"latitude"`
	Longitude *float64       `json:"longitude"`
}

// updateRecipientRequest carries partial recipient changes. The address is
// replaced as a whole when present; clearLocation drops the coordinates.
type updateRecipientRequest struct {
	Name          *string         `json:"name"`
	Address       *addressRequest `json:"address"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	ClearLocation bool            `json:"clearLocation"`
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// Response bodies.

type loginUserJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type loginResponseJSON struct {
	Token string        `json:"token"`
	User  loginUserJSON `json:"user"`
}

type orderJSON struct {
	ID            string     `json:"id"`
	RecipientID   string     `json:"recipientId"`
	CourierID     *string    `json:"courierId"`
	TrackingCode  string     `json:"trackingCode"`
	Status        string     `json:"status"`
	Description   string     `json:"description"`
	DeliveryPhoto string     `json:"deliveryPhoto,omitempty"`
	AwaitingAt    *time.Time `json:"awaitingAt"`
	WithdrawnAt   *time.Time `json:"withdrawnAt"`
	DeliveredAt   *time.Time `json:"deliveredAt"`
	ReturnedAt    *time.Time `json:"returnedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func orderToJSON(o queries.OrderResponse) orderJSON {
	resp := orderJSON{
		ID:            o.ID.String(),
		RecipientID:   o.RecipientID.String(),
		TrackingCode:  o.TrackingCode,
		Status:        o.Status,
		Description:   o.Description,
		DeliveryPhoto: o.DeliveryPhoto,
		AwaitingAt:    o.AwaitingAt,
		WithdrawnAt:   o.WithdrawnAt,
		DeliveredAt:   o.DeliveredAt,
		ReturnedAt:    o.ReturnedAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.CourierID != nil {
		id := o.CourierID.String()
		resp.CourierID = &id
	}
	return resp
}

func ordersToJSON(orders []queries.OrderResponse) []orderJSON {
	out := make([]orderJSON, len(orders))
	for i, o := range orders {
		out[i] = orderToJSON(o)
	}
	return out
}

type nearbyOrderJSON struct {
	Order      orderJSON `json:"order"`
	DistanceKm float64   `json:"distanceKm"`
}

type courierJSON struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	CPF     string `json:"cpf"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

func courierToJSON(c queries.CourierResponse) courierJSON {
	return courierJSON{
		ID:      c.ID.String(),
		UserID:  c.UserID.String(),
		Name:    c.Name,
		CPF:     c.CPF,
		Phone:   c.Phone,
		Vehicle: c.Vehicle,
	}
}

type recipientJSON struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Street    string   `json:"street"`
	Number    string   `json:"number"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	CEP       string   `json:"cep"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func recipientToJSON(r queries.RecipientResponse) recipientJSON {
	return recipientJSON{
		ID:        r.ID.String(),
		Name:      r.Name,
		Street:    r.Street,
		Number:    r.Number,
		City:      r.City,
		State:     r.State,
		CEP:       r.CEP,
		Phone:     r.Phone,
		Email:     r.Email,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

type deliveryEventJSON struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Type      string    `json:"type"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

func deliveryEventToJSON(e queries.DeliveryEventResponse) deliveryEventJSON {
	return deliveryEventJSON{
		ID:        e.ID.String(),
		OrderID:   e.OrderID.String(),
		Type:      e.Type,
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt,
	}
}
