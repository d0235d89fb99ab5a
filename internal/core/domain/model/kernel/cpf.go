package kernel

import (
	"fmt"
	"strings"

	"fastfeet/internal/pkg/errs"
)

const cpfDigits = 11

// ErrCPFIsNotConstructed is returned when validating a zero-value CPF.
var ErrCPFIsNotConstructed = errs.NewValueIsRequiredError(
	"CPF must be created via NewCPF constructor")

// CPF is the Brazilian individual taxpayer registry number used as the login
// identifier. It is stored digits-only: formatting characters are stripped on
// construction, so "123.456.789-00" and "12345678900" compare equal.
type CPF struct {
	digits string
}

// NewCPF normalizes raw input (strips every non-digit rune) and validates
// the result has exactly 11 digits. Normalization is idempotent.
func NewCPF(raw string) (CPF, error) {
	digits := NormalizeCPF(raw)
	if digits == "" {
		return CPF{}, errs.NewValueIsRequiredError("cpf")
	}
	if len(digits) != cpfDigits {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause("cpf",
			fmt.Errorf("%q does not contain %d digits", raw, cpfDigits))
	}
	return CPF{digits: digits}, nil
}

// NormalizeCPF strips every non-digit rune. Applied uniformly before any
// uniqueness check or lookup so formatted and unformatted CPFs referring to
// the same person are treated as equal.
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the normalized digits-only representation.
func (c CPF) String() string {
	return c.digits
}

// IsEqual reports whether two CPFs hold the same normalized digits.
func (c CPF) IsEqual(other CPF) bool {
	return c.digits == other.digits
}

// Validate returns ErrCPFIsNotConstructed for the zero value.
func (c CPF) Validate() error {
	if c.digits == "" {
		return ErrCPFIsNotConstructed
	}
	return nil
}
