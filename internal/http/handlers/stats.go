package handlers

import "net/http"

type statsResponse struct {
	TotalEvents          int64  `json:"total_events"`
	UpcomingEvents       int64  `json:"upcoming_events"`
	TotalDonations       int64  `json:"total_donations"`
	TotalDonationsAmount string `json:"total_donations_amount"`
	TotalApplications    int64  `json:"total_applications"`
	PendingApplications  int64  `json:"pending_applications"`
}

// AdminStats returns the dashboard counters (admin only).
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Stats.Summary(r.Context())
	if err != nil {
		a.internalError(w, err, "load stats failed")
		return
	}
	a.json(w, http.StatusOK, statsResponse{
		TotalEvents:          summary.TotalEvents,
		UpcomingEvents:       summary.UpcomingEvents,
		TotalDonations:       summary.TotalDonations,
		TotalDonationsAmount: summary.TotalDonationsAmount,
		TotalApplications:    summary.TotalApplications,
		PendingApplications:  summary.PendingApplications,
	})
}
