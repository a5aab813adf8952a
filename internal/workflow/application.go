package workflow

import (
	"context"
	"errors"
	"strings"

	"server/internal/domain"
)

// ApplicationService handles volunteer application intake and review.
type ApplicationService struct {
	applications domain.ApplicationRepository
}

func NewApplicationService(applications domain.ApplicationRepository) *ApplicationService {
	return &ApplicationService{applications: applications}
}

// ApplicationInput carries the free-form fields of a submission.
type ApplicationInput struct {
	Interests    string
	Availability string
	Message      string
}

// Submit files a pending application for the user. A user may hold at most
// one application; the pre-check gives the friendly error and the unique
// index on user_id closes the race.
func (s *ApplicationService) Submit(ctx context.Context, userID string, in ApplicationInput) (*domain.VolunteerApplication, error) {
	_, err := s.applications.GetByUser(ctx, userID)
	if err == nil {
		return nil, domain.ErrAlreadyApplied
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return s.applications.Create(ctx, &domain.VolunteerApplication{
		UserID:       userID,
		Interests:    strings.TrimSpace(in.Interests),
		Availability: strings.TrimSpace(in.Availability),
		Message:      strings.TrimSpace(in.Message),
		Status:       domain.ApplicationPending,
	})
}

// Review resolves a pending application. Approval promotes the applicant to
// the volunteer role; the status and role writes land in one transaction at
// the gateway. Only pending applications may transition, and only to approved
// or rejected.
func (s *ApplicationService) Review(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.VolunteerApplication, error) {
	if status != domain.ApplicationApproved && status != domain.ApplicationRejected {
		return nil, domain.ErrInvalidStatus
	}
	return s.applications.SetStatus(ctx, id, status)
}
