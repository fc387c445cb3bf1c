// Package calendar renders finalized events as iCalendar documents.
package calendar

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmeijn/dp-events/internal/event"
)

// ErrNoFinalDate means the event has no finalized date range and so has
// no calendar representation.
var ErrNoFinalDate = errors.New("event has no finalized date")

// GenerateICS generates an iCalendar (.ics) document for an event whose
// date has been finalized.
func GenerateICS(evt *event.Event) (string, error) {
	if evt.FinalDate == nil {
		return "", ErrNoFinalDate
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//dp-events//dp-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID - derived from the canonical URL so regenerating the file
	// updates the same calendar entry.
	ics.WriteString(fmt.Sprintf("UID:%x@datumprikker.nl\r\n", sha1.Sum([]byte(evt.CanonicalURL))))

	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(time.Now().UTC())))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(evt.FinalDate.Start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(evt.FinalDate.End)))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Title)))

	description := fmt.Sprintf("Overview: %s", evt.CanonicalURL)
	if evt.OpenRegistrationLink != "" {
		description = fmt.Sprintf("%s\nRegister at: %s", description, evt.OpenRegistrationLink)
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString(fmt.Sprintf("URL:%s\r\n", evt.CanonicalURL))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), nil
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
