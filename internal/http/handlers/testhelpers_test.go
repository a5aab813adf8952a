package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/workflow"
)

// testEnv wires an App over in-memory repositories so handlers can be
// exercised without a database.
type testEnv struct {
	app          *App
	users        *memUsers
	events       *memEvents
	donations    *memDonations
	applications *memApplications
	contacts     *memContacts
	stats        *memStats
}

func newTestEnv() *testEnv {
	users := newMemUsers()
	events := newMemEvents()
	registrations := newMemRegistrations(events)
	donations := &memDonations{}
	applications := newMemApplications(users)
	contacts := &memContacts{}
	stats := &memStats{}

	app := &App{
		Logger:       zerolog.Nop(),
		Credentials:  auth.NewService(auth.Config{JWTSecret: "test-secret"}),
		Users:        users,
		Events:       events,
		Donations:    donations,
		Applications: applications,
		Contacts:     contacts,
		Stats:        stats,
		Registration: workflow.NewRegistrationService(events, registrations),
		Review:       workflow.NewApplicationService(applications),
	}
	return &testEnv{
		app:          app,
		users:        users,
		events:       events,
		donations:    donations,
		applications: applications,
		contacts:     contacts,
		stats:        stats,
	}
}

func (e *testEnv) addUser(t *testing.T, name, email, password string, role domain.UserRole) *domain.User {
	t.Helper()
	hash, err := e.app.Credentials.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := e.users.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (e *testEnv) addEvent(t *testing.T, title string, capacity int) *domain.Event {
	t.Helper()
	event, err := e.events.Create(context.Background(), &domain.Event{
		Title:       title,
		Description: "desc",
		Date:        time.Now().Add(24 * time.Hour),
		Location:    "somewhere",
		Capacity:    capacity,
		Status:      domain.EventStatusUpcoming,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}

// Request helpers.

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(middleware.ContextWithUser(r.Context(), user))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var payload []map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func assertErrorMessage(t *testing.T, rr *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	if rr.Code != code {
		t.Fatalf("unexpected status code: got %d, want %d (body %s)", rr.Code, code, rr.Body.String())
	}
	payload := decodeBody(t, rr)
	if payload["error"] != message {
		t.Fatalf("unexpected error: got %#v, want %q", payload["error"], message)
	}
}

// In-memory repositories.

type memUsers struct {
	mu   sync.Mutex
	byID map[string]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*domain.User{}}
}

func (m *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email := strings.ToLower(user.Email)
	for _, u := range m.byID {
		if u.Email == email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := *user
	created.ID = uuid.NewString()
	created.Email = email
	created.CreatedAt = time.Now().UTC()
	m.byID[created.ID] = &created
	out := created
	return &out, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == strings.ToLower(email) {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) role(id string) domain.UserRole {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		return u.Role
	}
	return ""
}

func (m *memUsers) setRole(id string, role domain.UserRole) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.Role = role
	}
}

type memEvents struct {
	mu     sync.Mutex
	events map[string]*domain.Event
}

func newMemEvents() *memEvents {
	return &memEvents{events: map[string]*domain.Event{}}
}

func (m *memEvents) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *event
	created.ID = uuid.NewString()
	created.Registered = 0
	created.CreatedAt = time.Now().UTC()
	m.events[created.ID] = &created
	out := created
	return &out, nil
}

func (m *memEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		out := *e
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memEvents) List(_ context.Context) ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, nil
}

func (m *memEvents) Update(_ context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Capacity != nil && *patch.Capacity < e.Registered {
		return nil, domain.ErrCapacityBelowCount
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Capacity != nil {
		e.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		e.ImageURL = patch.ImageURL
	}
	out := *e
	return &out, nil
}

func (m *memEvents) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

// memRegistrations shares the event mutex-free maps through memEvents and
// keeps the duplicate check, the insert and the counter increment in one
// critical section, matching the real gateway's atomicity.
type memRegistrations struct {
	mu     sync.Mutex
	events *memEvents
	regs   map[string]map[string]domain.EventRegistration // eventID -> userID
}

func newMemRegistrations(events *memEvents) *memRegistrations {
	return &memRegistrations{events: events, regs: map[string]map[string]domain.EventRegistration{}}
}

func (m *memRegistrations) RegisterForEvent(_ context.Context, userID, eventID string) (*domain.EventRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events.mu.Lock()
	defer m.events.mu.Unlock()

	if _, ok := m.regs[eventID][userID]; ok {
		return nil, domain.ErrAlreadyRegistered
	}
	event, ok := m.events.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if event.Registered >= event.Capacity {
		return nil, domain.ErrEventFull
	}
	event.Registered++
	reg := domain.EventRegistration{
		ID:           uuid.NewString(),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now().UTC(),
	}
	if m.regs[eventID] == nil {
		m.regs[eventID] = map[string]domain.EventRegistration{}
	}
	m.regs[eventID][userID] = reg
	return &reg, nil
}

func (m *memRegistrations) Exists(_ context.Context, userID, eventID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.regs[eventID][userID]
	return ok, nil
}

func (m *memRegistrations) ListByUser(ctx context.Context, userID string) ([]domain.RegisteredEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.RegisteredEvent{}
	for eventID, byUser := range m.regs {
		reg, ok := byUser[userID]
		if !ok {
			continue
		}
		m.events.mu.Lock()
		var event domain.Event
		if e, ok := m.events.events[eventID]; ok {
			event = *e
		}
		m.events.mu.Unlock()
		out = append(out, domain.RegisteredEvent{Registration: reg, Event: event})
	}
	return out, nil
}

type memDonations struct {
	mu   sync.Mutex
	rows []domain.Donation
}

func (m *memDonations) Create(_ context.Context, donation *domain.Donation) (*domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *donation
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now().UTC()
	m.rows = append(m.rows, created)
	out := created
	return &out, nil
}

func (m *memDonations) List(_ context.Context) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Donation(nil), m.rows...), nil
}

func (m *memDonations) ListByUser(_ context.Context, userID string) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Donation{}
	for _, d := range m.rows {
		if d.UserID != nil && *d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

// TotalCompleted sums decimal strings in cents, the way the database sums the
// numeric column. No floats.
func (m *memDonations) TotalCompleted(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var cents int64
	for _, d := range m.rows {
		if d.Status != domain.DonationStatusCompleted {
			continue
		}
		c, err := amountCents(d.Amount)
		if err != nil {
			return "", err
		}
		cents += c
	}
	return fmt.Sprintf("%d.%02d", cents/100, cents%100), nil
}

func amountCents(amount string) (int64, error) {
	whole, frac, _ := strings.Cut(amount, ".")
	for len(frac) < 2 {
		frac += "0"
	}
	var cents int64
	if _, err := fmt.Sscanf(whole+frac[:2], "%d", &cents); err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", amount, err)
	}
	return cents, nil
}

type memApplications struct {
	mu    sync.Mutex
	users *memUsers
	byID  map[string]*domain.VolunteerApplication
}

func newMemApplications(users *memUsers) *memApplications {
	return &memApplications{users: users, byID: map[string]*domain.VolunteerApplication{}}
}

func (m *memApplications) Create(_ context.Context, application *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.UserID == application.UserID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	created := *application
	created.ID = uuid.NewString()
	created.Status = domain.ApplicationPending
	created.CreatedAt = time.Now().UTC()
	m.byID[created.ID] = &created
	out := created
	return &out, nil
}

func (m *memApplications) GetByUser(_ context.Context, userID string) (*domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.UserID == userID {
			out := *a
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memApplications) List(_ context.Context) ([]domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.VolunteerApplication, 0, len(m.byID))
	for _, a := range m.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memApplications) SetStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.VolunteerApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if a.Status != domain.ApplicationPending {
		return nil, domain.ErrApplicationReviewed
	}
	a.Status = status
	if status == domain.ApplicationApproved {
		m.users.setRole(a.UserID, domain.UserRoleVolunteer)
	}
	out := *a
	return &out, nil
}

type memContacts struct {
	mu   sync.Mutex
	rows []domain.ContactSubmission
}

func (m *memContacts) Create(_ context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *submission
	created.ID = uuid.NewString()
	created.Status = domain.SubmissionNew
	created.CreatedAt = time.Now().UTC()
	m.rows = append(m.rows, created)
	out := created
	return &out, nil
}

func (m *memContacts) List(_ context.Context) ([]domain.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ContactSubmission(nil), m.rows...), nil
}

func (m *memContacts) SetStatus(_ context.Context, id string, status domain.SubmissionStatus) (*domain.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = status
			out := m.rows[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memStats struct {
	summary domain.StatsSummary
}

func (m *memStats) Summary(_ context.Context) (*domain.StatsSummary, error) {
	out := m.summary
	return &out, nil
}

// fakeCountry resolves every IP to a fixed country code.
type fakeCountry struct {
	code string
	err  error
	ips  []string
}

func (f *fakeCountry) CountryCode(ip string) (string, error) {
	f.ips = append(f.ips, ip)
	return f.code, f.err
}
