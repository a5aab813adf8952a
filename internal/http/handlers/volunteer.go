package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/workflow"
)

type applyRequest struct {
	Interests    string `json:"interests" validate:"required"`
	Availability string `json:"availability" validate:"required"`
	Message      string `json:"message"`
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// VolunteerApply files the caller's volunteer application.
func (a *App) VolunteerApply(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	var req applyRequest
	if !a.decode(w, r, &req) {
		return
	}

	app, err := a.Review.Submit(r.Context(), user.ID, workflow.ApplicationInput{
		Interests:    req.Interests,
		Availability: req.Availability,
		Message:      req.Message,
	})
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toApplicationDTO(app))
	case errors.Is(err, domain.ErrAlreadyApplied):
		a.error(w, http.StatusBadRequest, "You have already submitted a volunteer application")
	default:
		a.internalError(w, err, "create volunteer application failed")
	}
}

// VolunteerApplicationsList returns every application (admin only).
func (a *App) VolunteerApplicationsList(w http.ResponseWriter, r *http.Request) {
	applications, err := a.Applications.List(r.Context())
	if err != nil {
		a.internalError(w, err, "list volunteer applications failed")
		return
	}
	out := make([]applicationDTO, 0, len(applications))
	for i := range applications {
		out = append(out, toApplicationDTO(&applications[i]))
	}
	a.json(w, http.StatusOK, out)
}

// VolunteerApplicationReview approves or rejects an application (admin only).
// Approval promotes the applicant to the volunteer role as part of the same
// unit of work.
func (a *App) VolunteerApplicationReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusNotFound, "Application not found")
		return
	}
	var req reviewRequest
	if !a.decode(w, r, &req) {
		return
	}

	app, err := a.Review.Review(r.Context(), id, domain.ApplicationStatus(req.Status))
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toApplicationDTO(app))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Application not found")
	case errors.Is(err, domain.ErrApplicationReviewed):
		a.error(w, http.StatusBadRequest, "Application already reviewed")
	case errors.Is(err, domain.ErrInvalidStatus):
		a.error(w, http.StatusBadRequest, "Status must be approved or rejected")
	default:
		a.internalError(w, err, "review volunteer application failed")
	}
}

// UserVolunteer returns the caller's application, or null when none exists.
func (a *App) UserVolunteer(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	app, err := a.Applications.GetByUser(r.Context(), user.ID)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toApplicationDTO(app))
	case errors.Is(err, domain.ErrNotFound):
		a.json(w, http.StatusOK, nil)
	default:
		a.internalError(w, err, "get user application failed")
	}
}
