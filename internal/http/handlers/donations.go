package handlers

import (
	"net/http"
	"strings"

	"server/internal/domain"
)

type donationCreateRequest struct {
	Amount    string  `json:"amount" validate:"required,numeric"`
	Status    string  `json:"status" validate:"omitempty,oneof=pending completed failed"`
	PaymentID *string `json:"payment_id"`
}

// DonationsCreate records a donation for the caller. Payment itself happens
// elsewhere; the payment identifier is stored as received.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	var req donationCreateRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.HasPrefix(req.Amount, "-") || isZeroAmount(req.Amount) {
		a.error(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	status := domain.DonationStatusCompleted
	if req.Status != "" {
		status = domain.DonationStatus(req.Status)
	}
	donation, err := a.Donations.Create(r.Context(), &domain.Donation{
		UserID:    &user.ID,
		Amount:    req.Amount,
		Status:    status,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		a.internalError(w, err, "create donation failed")
		return
	}
	a.json(w, http.StatusOK, toDonationDTO(donation))
}

// DonationsList returns every donation (admin only).
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.List(r.Context())
	if err != nil {
		a.internalError(w, err, "list donations failed")
		return
	}
	a.json(w, http.StatusOK, toDonationDTOs(donations))
}

// DonationsTotal is the public aggregate of completed donations. The total is
// a decimal string; it never passes through a float.
func (a *App) DonationsTotal(w http.ResponseWriter, r *http.Request) {
	total, err := a.Donations.TotalCompleted(r.Context())
	if err != nil {
		a.internalError(w, err, "total donations failed")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"total": total})
}

// UserDonations lists the caller's donations.
func (a *App) UserDonations(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	donations, err := a.Donations.ListByUser(r.Context(), user.ID)
	if err != nil {
		a.internalError(w, err, "list user donations failed")
		return
	}
	a.json(w, http.StatusOK, toDonationDTOs(donations))
}

// isZeroAmount reports whether the decimal string has no nonzero digit.
func isZeroAmount(amount string) bool {
	for _, c := range amount {
		if c >= '1' && c <= '9' {
			return false
		}
	}
	return true
}
