package practicum

import "fmt"

// RemoteError reports a transport failure or a non-200 answer from the
// status endpoint. Status is 0 for transport-level failures.
type RemoteError struct {
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("status endpoint request failed: %v", e.Err)
	}
	return fmt.Sprintf("status endpoint returned HTTP %d", e.Status)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// FormatError reports a payload shape mismatch (wrong type for a field or
// container).
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// MissingFieldError reports an absent required key.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string { return fmt.Sprintf("missing required key %q", e.Key) }

// UnknownStatusError reports a homework status outside the documented set.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("undocumented homework status %q", e.Status)
}
