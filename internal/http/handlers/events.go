package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"server/internal/domain"
)

type eventCreateRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=upcoming past cancelled"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,url"`
}

type eventUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" validate:"omitempty,min=1"`
	Capacity    *int       `json:"capacity" validate:"omitempty,gt=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=upcoming past cancelled"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
}

// EventsList is a public read of all events.
func (a *App) EventsList(w http.ResponseWriter, r *http.Request) {
	events, err := a.Events.List(r.Context())
	if err != nil {
		a.internalError(w, err, "list events failed")
		return
	}
	a.json(w, http.StatusOK, toEventDTOs(events))
}

// EventsGet is a public read of one event.
func (a *App) EventsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.eventID(w, r)
	if !ok {
		return
	}
	event, err := a.Events.GetByID(r.Context(), id)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toEventDTO(event))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Event not found")
	default:
		a.internalError(w, err, "get event failed")
	}
}

// EventsCreate creates a new event (admin only, enforced by the router).
func (a *App) EventsCreate(w http.ResponseWriter, r *http.Request) {
	var req eventCreateRequest
	if !a.decode(w, r, &req) {
		return
	}
	status := domain.EventStatusUpcoming
	if req.Status != "" {
		status = domain.EventStatus(req.Status)
	}
	event, err := a.Events.Create(r.Context(), &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Status:      status,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		a.internalError(w, err, "create event failed")
		return
	}
	a.json(w, http.StatusOK, toEventDTO(event))
}

// EventsUpdate applies a partial update to an event (admin only).
func (a *App) EventsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.eventID(w, r)
	if !ok {
		return
	}
	var req eventUpdateRequest
	if !a.decode(w, r, &req) {
		return
	}
	var status *domain.EventStatus
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		status = &s
	}
	event, err := a.Events.Update(r.Context(), id, domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Status:      status,
		ImageURL:    req.ImageURL,
	})
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toEventDTO(event))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, domain.ErrCapacityBelowCount):
		a.error(w, http.StatusBadRequest, "Capacity cannot be below the registered count")
	default:
		a.internalError(w, err, "update event failed")
	}
}

// EventsDelete removes an event (admin only).
func (a *App) EventsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := a.eventID(w, r)
	if !ok {
		return
	}
	err := a.Events.Delete(r.Context(), id)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Event not found")
	default:
		a.internalError(w, err, "delete event failed")
	}
}

// EventsRegister enrolls the caller into the event. Capacity and duplicate
// rejections are terminal business outcomes, not retryable faults.
func (a *App) EventsRegister(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	id, ok := a.eventID(w, r)
	if !ok {
		return
	}

	reg, err := a.Registration.Register(r.Context(), id, user.ID)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, toRegistrationDTO(reg))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, domain.ErrEventFull):
		a.error(w, http.StatusBadRequest, "Event is full")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		a.error(w, http.StatusBadRequest, "Already registered for this event")
	default:
		a.internalError(w, err, "event registration failed")
	}
}

// UserEvents lists the caller's registrations with their events.
func (a *App) UserEvents(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	items, err := a.Registration.EventsForUser(r.Context(), user.ID)
	if err != nil {
		a.internalError(w, err, "list user events failed")
		return
	}
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, map[string]any{
			"registration": toRegistrationDTO(&items[i].Registration),
			"event":        toEventDTO(&items[i].Event),
		})
	}
	a.json(w, http.StatusOK, out)
}

// eventID validates the route parameter. Anything that is not a UUID cannot
// reference an event, so it reads as missing.
func (a *App) eventID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusNotFound, "Event not found")
		return "", false
	}
	return id, true
}
