// Package errs provides the standardized error types used across the
// manufacturing backend.
//
// Each error kind follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the parameter name and an optional Cause
//   - constructors with and without a cause
//   - Error() producing a single-line, log-safe message
//   - Unwrap() returning the sentinel
//
// These errors cover the application and persistence layers. The status engines
// deliberately do not use them: malformed snapshots are reported as plain string
// lists so that status computation stays total and never fails a request.
package errs
