// Package event defines the value types produced by extracting a
// datumprikker.nl event-overview page.
//
// An Event is immutable once constructed and is only ever produced by a
// successful extraction. The final date is optional because the site only
// shows one once scheduling has concluded.
package event
