package handlers

import (
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"server/internal/domain"
)

type contactCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type contactUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}

// ContactCreate is the public contact-form intake. When a GeoIP database is
// configured the submission is tagged with the client's country.
func (a *App) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var req contactCreateRequest
	if !a.decode(w, r, &req) {
		return
	}

	submission, err := a.Contacts.Create(r.Context(), &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.SubmissionNew,
		Country: a.clientCountry(r),
	})
	if err != nil {
		a.internalError(w, err, "create contact submission failed")
		return
	}
	a.json(w, http.StatusOK, toContactDTO(submission))
}

// ContactSubmissionsList returns every submission (admin only).
func (a *App) ContactSubmissionsList(w http.ResponseWriter, r *http.Request) {
	submissions, err := a.Contacts.List(r.Context())
	if err != nil {
		a.internalError(w, err, "list contact submissions failed")
		return
	}
	out := make([]contactDTO, 0, len(submissions))
	for i := range submissions {
		out = append(out, toContactDTO(&submissions[i]))
	}
	a.json(w, http.StatusOK, out)
}

// ContactSubmissionUpdate moves a submission through triage (admin only).
func (a *App) ContactSubmissionUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusNotFound, "Submission not found")
		return
	}
	var req contactUpdateRequest
	if !a.decode(w, r, &req) {
		return
	}

	submission, err := a.Contacts.SetStatus(r.Context(), id, domain.SubmissionStatus(req.Status))
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toContactDTO(submission))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Submission not found")
	default:
		a.internalError(w, err, "update contact submission failed")
	}
}

func (a *App) clientCountry(r *http.Request) *string {
	if a.Country == nil {
		return nil
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	code, err := a.Country.CountryCode(host)
	if err != nil || code == "" {
		return nil
	}
	return &code
}
