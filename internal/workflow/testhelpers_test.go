package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"server/internal/domain"
)

// memStore is an in-memory stand-in for the persistence gateway. Its
// RegisterForEvent mirrors the real gateway's atomicity: one mutex-guarded
// critical section covers the duplicate check, the insert and the counter
// increment, so the workflow's concurrency contract can be exercised without
// a database.
type memStore struct {
	mu            sync.Mutex
	events        map[string]*domain.Event
	registrations map[string]map[string]domain.EventRegistration // eventID -> userID
	applications  map[string]*domain.VolunteerApplication        // by userID
	appsByID      map[string]*domain.VolunteerApplication
	roles         map[string]domain.UserRole
	seq           int
}

func newMemStore() *memStore {
	return &memStore{
		events:        map[string]*domain.Event{},
		registrations: map[string]map[string]domain.EventRegistration{},
		applications:  map[string]*domain.VolunteerApplication{},
		appsByID:      map[string]*domain.VolunteerApplication{},
		roles:         map[string]domain.UserRole{},
	}
}

func (m *memStore) addEvent(id string, capacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[id] = &domain.Event{ID: id, Title: id, Capacity: capacity, Status: domain.EventStatusUpcoming}
	m.registrations[id] = map[string]domain.EventRegistration{}
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (m *memStore) Create(context.Context, *domain.Event) (*domain.Event, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memStore) List(context.Context) ([]domain.Event, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memStore) Update(context.Context, string, domain.EventPatch) (*domain.Event, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memStore) Delete(context.Context, string) error {
	return fmt.Errorf("not implemented")
}

func (m *memStore) RegisterForEvent(_ context.Context, userID, eventID string) (*domain.EventRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if _, dup := m.registrations[eventID][userID]; dup {
		return nil, domain.ErrAlreadyRegistered
	}
	if event.Registered >= event.Capacity {
		return nil, domain.ErrEventFull
	}
	m.seq++
	reg := domain.EventRegistration{
		ID:           fmt.Sprintf("reg-%d", m.seq),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now(),
	}
	m.registrations[eventID][userID] = reg
	event.Registered++
	return &reg, nil
}

func (m *memStore) Exists(_ context.Context, userID, eventID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.registrations[eventID][userID]
	return ok, nil
}

func (m *memStore) ListByUser(_ context.Context, userID string) ([]domain.RegisteredEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []domain.RegisteredEvent
	for eventID, regs := range m.registrations {
		if reg, ok := regs[userID]; ok {
			items = append(items, domain.RegisteredEvent{Registration: reg, Event: *m.events[eventID]})
		}
	}
	return items, nil
}

// ApplicationRepository implementation.

func (m *memStore) CreateApplication(_ context.Context, app *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.applications[app.UserID]; dup {
		return nil, domain.ErrAlreadyApplied
	}
	m.seq++
	stored := *app
	stored.ID = fmt.Sprintf("app-%d", m.seq)
	stored.Status = domain.ApplicationPending
	stored.CreatedAt = time.Now()
	m.applications[app.UserID] = &stored
	m.appsByID[stored.ID] = &stored
	return &stored, nil
}

func (m *memStore) GetByUser(_ context.Context, userID string) (*domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.applications[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *app
	return &copied, nil
}

func (m *memStore) ListApplications(context.Context) ([]domain.VolunteerApplication, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memStore) SetStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.appsByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if app.Status != domain.ApplicationPending {
		return nil, domain.ErrApplicationReviewed
	}
	// Status and role change together, as the real gateway's transaction does.
	app.Status = status
	if status == domain.ApplicationApproved {
		m.roles[app.UserID] = domain.UserRoleVolunteer
	}
	copied := *app
	return &copied, nil
}

// applicationRepo adapts memStore method names to domain.ApplicationRepository.
type applicationRepo struct{ *memStore }

func (a applicationRepo) Create(ctx context.Context, app *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	return a.CreateApplication(ctx, app)
}

func (a applicationRepo) List(ctx context.Context) ([]domain.VolunteerApplication, error) {
	return a.ListApplications(ctx)
}

var (
	_ domain.EventRepository        = (*memStore)(nil)
	_ domain.RegistrationRepository = (*memStore)(nil)
	_ domain.ApplicationRepository  = applicationRepo{}
)
