package errs

import (
	"fmt"
	"strings"
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ErrObjectNotFound is the sentinel for all not-found failures.
var ErrObjectNotFound = fmt.Errorf("object not found")

// ObjectNotFoundError indicates a referenced entity does not exist.
// ParamName names the reference (e.g. "order", "recipientId") and ID holds
// the value that failed to resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ErrValueIsInvalid is the sentinel for malformed or out-of-policy values.
var ErrValueIsInvalid = fmt.Errorf("value is invalid")

// ValueIsInvalidError indicates a supplied value does not satisfy its rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ErrValueIsRequired is the sentinel for missing required values.
var ErrValueIsRequired = fmt.Errorf("value is required")

// ValueIsRequiredError indicates a required value was absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ErrInvalidTransition is the sentinel for lifecycle state-machine violations.
var ErrInvalidTransition = fmt.Errorf("invalid transition")

// InvalidTransitionError indicates an operation was attempted from a status
// that forbids it. Operation names the attempted transition and Status holds
// the status the aggregate was actually in.
type InvalidTransitionError struct {
	Operation string
	Status    string
	Cause     error
}

func NewInvalidTransitionError(operation, status string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, Status: status}
}

func NewInvalidTransitionErrorWithCause(operation, status string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, Status: status, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s from status %s (cause: %s)",
			ErrInvalidTransition, e.Operation, e.Status, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s from status %s", ErrInvalidTransition, e.Operation, e.Status))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ErrOperationForbidden is the sentinel for resource-level authorization failures.
var ErrOperationForbidden = fmt.Errorf("operation forbidden")

// OperationForbiddenError indicates the authenticated actor lacks rights over
// the specific resource, e.g. a courier acting on another courier's order.
type OperationForbiddenError struct {
	Operation string
	Reason    string
}

func NewOperationForbiddenError(operation, reason string) *OperationForbiddenError {
	return &OperationForbiddenError{Operation: operation, Reason: reason}
}

func (e *OperationForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrOperationForbidden, e.Operation, e.Reason))
}

func (e *OperationForbiddenError) Unwrap() error {
	return ErrOperationForbidden
}

// ErrUnauthorized is the sentinel for missing or invalid credentials.
var ErrUnauthorized = fmt.Errorf("unauthorized")

// UnauthorizedError indicates the caller could not be authenticated.
// The reason is for logs only; boundaries must answer with a uniform message.
type UnauthorizedError struct {
	Reason string
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ErrDuplicateValue is the sentinel for uniqueness violations.
var ErrDuplicateValue = fmt.Errorf("duplicate value")

// DuplicateValueError indicates a value that must be unique already exists,
// e.g. registering an already-registered CPF.
type DuplicateValueError struct {
	ParamName string
	Value     string
	Cause     error
}

func NewDuplicateValueError(paramName, value string) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value}
}

func NewDuplicateValueErrorWithCause(paramName, value string, cause error) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateValueError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s (cause: %s)", ErrDuplicateValue, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrDuplicateValue, e.ParamName, e.Value))
}

func (e *DuplicateValueError) Unwrap() error {
	return ErrDuplicateValue
}
