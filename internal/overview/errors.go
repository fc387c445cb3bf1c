package overview

import (
	"errors"
	"fmt"
)

var (
	// ErrNonExistingEvent means the site served its home-page
	// placeholder instead of an event: the requested event URL does
	// not exist.
	ErrNonExistingEvent = errors.New("the requested event is non-existing")

	// ErrUnexpectedMarkup means an expected element or attribute is
	// missing from the page, typically after a site redesign.
	ErrUnexpectedMarkup = errors.New("page markup does not match the expected format")
)

// DateParseError reports a date attribute that was present but could not
// be parsed as an RFC 3339 timestamp. Callers branch on the type with
// errors.As; the wrapped cause is informational only.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("page has a date in an unexpected format: %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
