// Package overview extracts the structured event summary from a
// datumprikker.nl event-overview page.
//
// Parse is a pure function over raw HTML: it walks a fixed sequence of
// targeted lookups and either assembles a complete event.Event or fails
// at the first missing or malformed piece. The three failure kinds stay
// distinguishable so callers can treat "event does not exist" differently
// from "page structure changed" and "date unreadable".
package overview
