package domain

import "time"

// EventStatus enumerates event lifecycle states. The status is informational
// and does not gate registration.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusPast      EventStatus = "past"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event represents a capacity-bounded community event.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Location    string
	Capacity    int
	Registered  int
	Status      EventStatus
	ImageURL    *string
	CreatedAt   time.Time
}

// Full reports whether the event has reached its capacity.
func (e Event) Full() bool {
	return e.Registered >= e.Capacity
}

// EventPatch carries a partial update for an event. Nil fields are left
// unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
	Status      *EventStatus
	ImageURL    *string
}
