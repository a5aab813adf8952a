package domain

import "time"

// SubmissionStatus enumerates contact submission triage states.
type SubmissionStatus string

const (
	SubmissionNew       SubmissionStatus = "new"
	SubmissionRead      SubmissionStatus = "read"
	SubmissionResponded SubmissionStatus = "responded"
)

// ContactSubmission is an anonymous contact-form entry. Country is resolved
// from the client IP when a GeoIP database is configured, nil otherwise.
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    SubmissionStatus
	Country   *string
	CreatedAt time.Time
}
