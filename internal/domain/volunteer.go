package domain

import "time"

// ApplicationStatus enumerates volunteer application states. Transitions are
// one-way: pending moves to approved or rejected exactly once.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// VolunteerApplication is a user's request to volunteer. At most one
// application exists per user, enforced by a unique index on user_id.
type VolunteerApplication struct {
	ID           string
	UserID       string
	Interests    string
	Availability string
	Message      string
	Status       ApplicationStatus
	CreatedAt    time.Time
}
