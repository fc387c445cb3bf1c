// Package cli implements the command-line interface for dp-events.
//
// The cli package provides the Cobra-based CLI that fetches a single
// datumprikker.nl event-overview URL and prints its summary as text or
// JSON, optionally writing an iCalendar file for finalized events. It
// maps the extraction error kinds onto distinct exit codes so shell
// callers can tell a non-existing event apart from a failure.
package cli
