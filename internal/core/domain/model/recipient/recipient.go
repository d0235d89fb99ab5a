package recipient

import (
	"errors"
	"strings"
	"unicode"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// ErrRecipientIsNotConstructed is returned when using an improperly
// initialized Recipient.
var ErrRecipientIsNotConstructed = errors.New(
	"Recipient must be created via NewRecipient or RestoreRecipient constructor")

// Address holds the postal fields of a recipient. CEP is stored digits-only;
// formatting characters are stripped on construction.
type Address struct {
	Street string
	Number string
	City   string
	State  string
	CEP    string
}

// NormalizeCEP strips every non-digit rune from a raw CEP string so that
// formatted and unformatted CEPs compare equal.
func NormalizeCEP(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Recipient is the destination profile an order is addressed to. Besides the
// postal address it optionally carries geocoordinates, which the nearby-order
// search requires, and contact fields used by the notification channel.
type Recipient struct {
	id       kernel.UUID
	name     string
	address  Address
	phone    string
	email    string
	location *kernel.GeoPoint

	guard kernel.ConstructorGuard
}

// NewRecipient creates a recipient profile. Name, street, city, state and CEP
// are required; contact fields and coordinates are optional. A nil location
// means the recipient is invisible to the nearby-order search.
func NewRecipient(
	id kernel.UUID,
	name string,
	address Address,
	phone, email string,
	location *kernel.GeoPoint,
) (*Recipient, error) {
	recipient := &Recipient{
		phone: phone,
		email: email,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		recipient.setID(id),
		recipient.setName(name),
		recipient.setAddress(address),
		recipient.setLocation(location),
	); err != nil {
		return nil, err
	}

	return recipient, nil
}

// RestoreRecipient reconstructs a Recipient from persistent storage.
func RestoreRecipient(
	id kernel.UUID,
	name string,
	address Address,
	phone, email string,
	location *kernel.GeoPoint,
) (*Recipient, error) {
	return NewRecipient(id, name, address, phone, email, location)
}

// Validate ensures the Recipient instance was properly constructed.
func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// IsEqual compares two recipients by their unique identifiers.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Name returns the recipient's display name.
func (r *Recipient) Name() string {
	return r.name
}

// Address returns the postal address with a digits-only CEP.
func (r *Recipient) Address() Address {
	return r.address
}

// Phone returns the optional contact number.
func (r *Recipient) Phone() string {
	return r.phone
}

// Email returns the optional contact email.
func (r *Recipient) Email() string {
	return r.email
}

// Location returns the recipient's geocoordinates, nil if not geocoded.
func (r *Recipient) Location() *kernel.GeoPoint {
	return r.location
}

// ChangeName replaces the display name.
func (r *Recipient) ChangeName(name string) error {
	return r.setName(name)
}

// ChangeAddress replaces the postal address, re-normalizing the CEP.
func (r *Recipient) ChangeAddress(address Address) error {
	return r.setAddress(address)
}

// ChangeContact replaces the optional contact fields.
func (r *Recipient) ChangeContact(phone, email string) {
	r.phone = phone
	r.email = email
}

// ChangeLocation replaces or clears the geocoordinates.
func (r *Recipient) ChangeLocation(location *kernel.GeoPoint) error {
	return r.setLocation(location)
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(address Address) error {
	var missing []error
	for param, value := range map[string]string{
		"street": address.Street,
		"city":   address.City,
		"state":  address.State,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, errs.NewValueIsRequiredError(param))
		}
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	address.CEP = NormalizeCEP(address.CEP)
	if address.CEP == "" {
		return errs.NewValueIsRequiredError("cep")
	}

	r.address = address
	return nil
}

func (r *Recipient) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		r.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
