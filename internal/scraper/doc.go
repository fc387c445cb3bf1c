// Package scraper fetches datumprikker.nl event-overview pages over HTTP
// and hands the body to the overview extractor.
//
// Transient network failures and server errors are retried with
// exponential backoff. Extraction failures are never retried and are
// surfaced unchanged, so callers can still branch on the overview error
// kinds after a fetch.
package scraper
