// Package errs provides standardized error types for the dispatch service.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value lies outside of its allowed bounds
//   - ObjectNotFoundError: an aggregate cannot be found
//   - ObjectAlreadyExistsError: an aggregate with the same unique key already exists
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across layers
//
// The HTTP adapter maps the sentinels onto status codes, so domain code never
// needs to know about transport concerns.
package errs
