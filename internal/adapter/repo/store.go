package repo

import "server/internal/infra"

// Store bundles every repository over one runner. It is the persistence
// gateway handed to the HTTP layer; all durable reads and writes go through
// it.
type Store struct {
	Users         *UserRepositoryPG
	Events        *EventRepositoryPG
	Registrations *RegistrationRepositoryPG
	Donations     *DonationRepositoryPG
	Applications  *VolunteerRepositoryPG
	Contacts      *ContactRepositoryPG
	Stats         *StatsRepositoryPG
}

// NewStore wires the repositories to a shared runner.
func NewStore(sql infra.TxRunner) *Store {
	return &Store{
		Users:         NewUserRepository(sql),
		Events:        NewEventRepository(sql),
		Registrations: NewRegistrationRepository(sql),
		Donations:     NewDonationRepository(sql),
		Applications:  NewVolunteerRepository(sql),
		Contacts:      NewContactRepository(sql),
		Stats:         NewStatsRepository(sql),
	}
}
