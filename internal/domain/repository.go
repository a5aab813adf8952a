package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// EventRepository defines persistence for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// RegistrationRepository handles event registrations. RegisterForEvent is the
// compound operation: it creates the registration row and increments the
// event's registered counter as one atomic unit, failing with
// ErrAlreadyRegistered or ErrEventFull without leaving partial state.
type RegistrationRepository interface {
	RegisterForEvent(ctx context.Context, userID, eventID string) (*EventRegistration, error)
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]RegisteredEvent, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) (*Donation, error)
	List(ctx context.Context) ([]Donation, error)
	ListByUser(ctx context.Context, userID string) ([]Donation, error)
	TotalCompleted(ctx context.Context) (string, error)
}

// ApplicationRepository handles volunteer applications. SetStatus performs the
// status write and, on approval, the applicant's role promotion in one atomic
// unit.
type ApplicationRepository interface {
	Create(ctx context.Context, application *VolunteerApplication) (*VolunteerApplication, error)
	GetByUser(ctx context.Context, userID string) (*VolunteerApplication, error)
	List(ctx context.Context) ([]VolunteerApplication, error)
	SetStatus(ctx context.Context, id string, status ApplicationStatus) (*VolunteerApplication, error)
}

// ContactRepository handles contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) (*ContactSubmission, error)
	List(ctx context.Context) ([]ContactSubmission, error)
	SetStatus(ctx context.Context, id string, status SubmissionStatus) (*ContactSubmission, error)
}

// StatsRepository reads aggregate counters.
type StatsRepository interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}
