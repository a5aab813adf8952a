package handlers

import (
	"time"

	"server/internal/domain"
)

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

type eventDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Registered  int       `json:"registered"`
	Status      string    `json:"status"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEventDTO(e *domain.Event) eventDTO {
	return eventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Capacity:    e.Capacity,
		Registered:  e.Registered,
		Status:      string(e.Status),
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
	}
}

func toEventDTOs(events []domain.Event) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for i := range events {
		out = append(out, toEventDTO(&events[i]))
	}
	return out
}

type registrationDTO struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EventID      string    `json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

func toRegistrationDTO(r *domain.EventRegistration) registrationDTO {
	return registrationDTO{ID: r.ID, UserID: r.UserID, EventID: r.EventID, RegisteredAt: r.RegisteredAt}
}

type donationDTO struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	PaymentID *string   `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{ID: d.ID, UserID: d.UserID, Amount: d.Amount, Status: string(d.Status), PaymentID: d.PaymentID, CreatedAt: d.CreatedAt}
}

func toDonationDTOs(donations []domain.Donation) []donationDTO {
	out := make([]donationDTO, 0, len(donations))
	for i := range donations {
		out = append(out, toDonationDTO(&donations[i]))
	}
	return out
}

type applicationDTO struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Interests    string    `json:"interests"`
	Availability string    `json:"availability"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func toApplicationDTO(a *domain.VolunteerApplication) applicationDTO {
	return applicationDTO{
		ID:           a.ID,
		UserID:       a.UserID,
		Interests:    a.Interests,
		Availability: a.Availability,
		Message:      a.Message,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

type contactDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

func toContactDTO(s *domain.ContactSubmission) contactDTO {
	return contactDTO{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		Status:    string(s.Status),
		Country:   s.Country,
		CreatedAt: s.CreatedAt,
	}
}
