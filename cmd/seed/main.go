package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/adapter/repo"
	"server/internal/auth"
	"server/internal/domain"
	"server/internal/infra"
)

// Development fixtures: an admin, two donor accounts, a few events and
// completed donations. Re-running against a seeded database skips users that
// already exist.
func main() {
	var passwordFlag string
	flag.StringVar(&passwordFlag, "password", "password123", "password assigned to every seeded account")
	flag.Parse()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "seed").Logger()
	store := repo.NewStore(infra.NewSQLRunner(pool, logger))
	credentials := auth.NewService(auth.Config{JWTSecret: "seed"})

	hash, err := credentials.HashPassword(passwordFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to hash password: %w", err))
	}

	seedUsers := []domain.User{
		{Name: "Admin User", Email: "admin@charity.org", Role: domain.UserRoleAdmin},
		{Name: "Jane Donor", Email: "jane@example.com", Role: domain.UserRoleDonor},
		{Name: "John Donor", Email: "john@example.com", Role: domain.UserRoleDonor},
	}

	users := make([]*domain.User, 0, len(seedUsers))
	for i := range seedUsers {
		seedUsers[i].PasswordHash = hash
		created, err := store.Users.Create(ctx, &seedUsers[i])
		if errors.Is(err, domain.ErrEmailTaken) {
			existing, err := store.Users.GetByEmail(ctx, seedUsers[i].Email)
			if err != nil {
				exitWithError(fmt.Errorf("failed to load existing user %s: %w", seedUsers[i].Email, err))
			}
			fmt.Printf("user %s already exists, skipping\n", existing.Email)
			users = append(users, existing)
			continue
		}
		if err != nil {
			exitWithError(fmt.Errorf("failed to create user %s: %w", seedUsers[i].Email, err))
		}
		fmt.Printf("created user %s (%s)\n", created.Email, created.Role)
		users = append(users, created)
	}

	now := time.Now().UTC()
	seedEvents := []domain.Event{
		{
			Title:       "Community Food Drive",
			Description: "Help us collect and distribute food to families in need.",
			Date:        now.AddDate(0, 1, 0),
			Location:    "Community Center, Main St",
			Capacity:    50,
			Status:      domain.EventStatusUpcoming,
		},
		{
			Title:       "Charity Fun Run",
			Description: "A 5k run raising funds for local shelters.",
			Date:        now.AddDate(0, 2, 0),
			Location:    "Riverside Park",
			Capacity:    200,
			Status:      domain.EventStatusUpcoming,
		},
		{
			Title:       "Winter Coat Collection",
			Description: "Donate gently used coats for the winter season.",
			Date:        now.AddDate(0, 0, -30),
			Location:    "Downtown Office",
			Capacity:    30,
			Status:      domain.EventStatusPast,
		},
	}
	for i := range seedEvents {
		created, err := store.Events.Create(ctx, &seedEvents[i])
		if err != nil {
			exitWithError(fmt.Errorf("failed to create event %q: %w", seedEvents[i].Title, err))
		}
		fmt.Printf("created event %q\n", created.Title)
	}

	amounts := []string{"100.00", "250.00", "50.00"}
	for i, amount := range amounts {
		donor := users[1+i%2]
		created, err := store.Donations.Create(ctx, &domain.Donation{
			UserID: &donor.ID,
			Amount: amount,
			Status: domain.DonationStatusCompleted,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to create donation: %w", err))
		}
		fmt.Printf("created donation %s by %s\n", created.Amount, donor.Email)
	}

	fmt.Println("seed complete")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
