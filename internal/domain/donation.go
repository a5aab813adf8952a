package domain

import "time"

// DonationStatus enumerates donation payment states. Only completed donations
// count toward aggregate totals.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
)

// Donation records a supporter contribution. Amount is a decimal string
// ("100.00") and stays a string on the Go side; arithmetic on it happens in
// SQL so no float conversion can drift.
type Donation struct {
	ID        string
	UserID    *string
	Amount    string
	Status    DonationStatus
	PaymentID *string
	CreatedAt time.Time
}
