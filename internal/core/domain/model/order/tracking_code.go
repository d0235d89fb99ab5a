package order

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"fastfeet/internal/pkg/errs"
)

// trackingCodePattern matches the canonical tracking code form:
// the "FF-" prefix followed by 8 uppercase hexadecimal characters.
var trackingCodePattern = regexp.MustCompile(`^FF-[A-F0-9]{8}$`)

// TrackingCode is a short human-shareable order identifier that recipients
// can use to track a delivery without knowing the internal order ID.
//
// TrackingCode is immutable and safe for concurrent use.
type TrackingCode struct {
	value string
}

// GenerateTrackingCode creates a fresh tracking code from a random UUID:
// the first 8 hex characters of its canonical form, uppercased, prefixed
// with "FF-". Uniqueness relies on the randomness of the source identifier;
// the persistence layer additionally enforces a unique constraint.
func GenerateTrackingCode() TrackingCode {
	segment := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return TrackingCode{value: "FF-" + strings.ToUpper(segment)}
}

// TrackingCodeFromString reconstructs a tracking code from its textual form,
// typically when loading orders from persistence.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !trackingCodePattern.MatchString(s) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingCode",
			fmt.Errorf("%q does not match %s", s, trackingCodePattern.String()),
		)
	}
	return TrackingCode{value: s}, nil
}

// String returns the canonical "FF-XXXXXXXX" form.
func (t TrackingCode) String() string {
	return t.value
}

// IsEqual reports whether two tracking codes represent the same value.
func (t TrackingCode) IsEqual(other TrackingCode) bool {
	return t.value == other.value
}

// Validate returns an error for the zero value.
func (t TrackingCode) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError(
			"TrackingCode must be created via GenerateTrackingCode or TrackingCodeFromString")
	}
	return nil
}
