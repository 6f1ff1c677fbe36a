// Package errs provides standardized error types for the marketplace order service.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the details
//   - Constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP adapter maps sentinels to status codes:
//   - ErrObjectNotFound: 404
//   - ErrAccessDenied: 403
//   - ErrConcurrentModification: 409
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: 400
package errs
