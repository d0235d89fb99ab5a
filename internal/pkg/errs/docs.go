// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full failure taxonomy of the service:
//   - ObjectNotFoundError: a referenced entity is absent
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input
//   - InvalidTransitionError: a lifecycle operation attempted from a status
//     that forbids it
//   - OperationForbiddenError: the actor lacks rights over the resource
//   - UnauthorizedError: missing or invalid credentials
//   - DuplicateValueError: a uniqueness violation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Errors are raised at the point of detection and propagate unmodified to
// the HTTP boundary, which maps sentinels to status codes.
package errs
