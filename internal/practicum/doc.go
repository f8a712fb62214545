// Package practicum talks to the homework review status endpoint: one GET
// per poll cycle, shape validation of the decoded payload, and rendering of
// a homework record into the notification line.
//
// Failures are reported as closed, tagged error kinds (RemoteError,
// FormatError, MissingFieldError, UnknownStatusError) so the poll loop can
// match them once at its boundary instead of stringifying arbitrary errors.
package practicum
