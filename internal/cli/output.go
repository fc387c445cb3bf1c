package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cmeijn/dp-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// displayTimeFormat renders an instant with its offset, matching how the
// site displays finalized dates.
const displayTimeFormat = "2006-01-02 15:04:05 Z07:00"

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time    `json:"checked_at"`
	Event     *event.Event `json:"event"`
}

// WriteOutput writes the result in the specified format. The location
// only affects the text format; JSON always carries UTC instants.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, loc *time.Location) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, loc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, loc *time.Location) error {
	evt := result.Event

	fmt.Fprintf(w, "event url: %s\n", evt.CanonicalURL)
	fmt.Fprintf(w, "title: %s\n", evt.Title)

	if evt.FinalDate != nil {
		fmt.Fprintf(w, "start: %s\n", evt.FinalDate.Start.In(loc).Format(displayTimeFormat))
		fmt.Fprintf(w, "end: %s\n", evt.FinalDate.End.In(loc).Format(displayTimeFormat))
	} else {
		fmt.Fprintln(w, "no final date selected")
	}

	if evt.OpenRegistrationLink != "" {
		fmt.Fprintf(w, "registration link: %s\n", evt.OpenRegistrationLink)
	}

	return nil
}
