package event

import "time"

// Event is the structured summary of an event-overview page.
type Event struct {
	CanonicalURL string     `json:"canonical_url"`
	Title        string     `json:"title"`
	FinalDate    *DateRange `json:"final_date,omitempty"`

	// OpenRegistrationLink is the signup URL for events still open for
	// new participants. Empty means registration is closed.
	OpenRegistrationLink string `json:"open_registration_link,omitempty"`
}

// DateRange is the date/time range selected as the event's outcome.
// Both instants are stored in UTC. No ordering between Start and End is
// enforced; the values are passed through from the source page.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// HasFinalDate reports whether scheduling has concluded for this event.
func (e *Event) HasFinalDate() bool {
	return e.FinalDate != nil
}
