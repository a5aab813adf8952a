package domain

// StatsSummary aggregates counts across events, donations and applications
// for the admin dashboard.
type StatsSummary struct {
	TotalEvents          int64
	UpcomingEvents       int64
	TotalDonations       int64
	TotalDonationsAmount string
	TotalApplications    int64
	PendingApplications  int64
}
