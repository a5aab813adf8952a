package domain

import "time"

// EventRegistration links a user to an event. Registrations are append-only:
// the pair (UserID, EventID) is unique and no operation deletes them.
type EventRegistration struct {
	ID           string
	UserID       string
	EventID      string
	RegisteredAt time.Time
}

// RegisteredEvent pairs a registration with the event it refers to, for the
// caller-facing listing.
type RegisteredEvent struct {
	Registration EventRegistration
	Event        Event
}
