// Package workflow holds the business operations that span multiple storage
// reads and writes and must appear atomic to observers.
package workflow

import (
	"context"

	"server/internal/domain"
)

// RegistrationService enrolls users into capacity-bounded events.
type RegistrationService struct {
	events        domain.EventRepository
	registrations domain.RegistrationRepository
}

func NewRegistrationService(events domain.EventRepository, registrations domain.RegistrationRepository) *RegistrationService {
	return &RegistrationService{events: events, registrations: registrations}
}

// Register creates a registration for the user. Preconditions surface as
// domain errors: ErrNotFound for a missing event, ErrAlreadyRegistered for a
// duplicate, ErrEventFull at capacity. The pre-checks here only produce
// friendly failures on the common path; the transactional insert-and-increment
// in the gateway is the guard that holds under concurrency, so a race slipping
// past a pre-check still ends in the same error, never in an over-capacity
// event.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Duplicate beats fullness: a user already holding a spot on a full event
	// is told "already registered", not "full".
	already, err := s.registrations.Exists(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, domain.ErrAlreadyRegistered
	}

	if event.Full() {
		return nil, domain.ErrEventFull
	}

	return s.registrations.RegisterForEvent(ctx, userID, eventID)
}

// EventsForUser lists the caller's registrations with their events.
func (s *RegistrationService) EventsForUser(ctx context.Context, userID string) ([]domain.RegisteredEvent, error) {
	return s.registrations.ListByUser(ctx, userID)
}
