package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// RegistrationRepositoryPG implements domain.RegistrationRepository backed by
// PostgreSQL. The compound register operation is the invariant-bearing piece:
// both writes run on one transaction.
type RegistrationRepositoryPG struct {
	sql infra.TxRunner
}

// NewRegistrationRepository creates a new RegistrationRepositoryPG.
func NewRegistrationRepository(sql infra.TxRunner) *RegistrationRepositoryPG {
	return &RegistrationRepositoryPG{sql: sql}
}

// RegisterForEvent inserts the registration row and increments the event's
// counter atomically. The insert runs first so a duplicate surfaces as
// ErrAlreadyRegistered even when the event is also full; the conditional
// increment only lands while registered < capacity, and a zero-row update
// rolls the whole unit back with ErrEventFull.
func (r *RegistrationRepositoryPG) RegisterForEvent(ctx context.Context, userID, eventID string) (*domain.EventRegistration, error) {
	var reg domain.EventRegistration
	err := r.sql.WithTx(ctx, func(tx infra.SQLExecutor) error {
		row := tx.QueryRow(ctx, sqlinline.QInsertRegistration, userID, eventID)
		if err := row.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.RegisteredAt); err != nil {
			if infra.IsUniqueViolation(err) {
				return domain.ErrAlreadyRegistered
			}
			return err
		}
		tag, err := tx.Exec(ctx, sqlinline.QIncrementEventRegistered, eventID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEventFull
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Exists reports whether the user already holds a registration for the event.
func (r *RegistrationRepositoryPG) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	var exists bool
	if err := r.sql.QueryRow(ctx, sqlinline.QRegistrationExists, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByUser returns the user's registrations joined with their events.
func (r *RegistrationRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.RegisteredEvent, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListUserRegistrations, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RegisteredEvent
	for rows.Next() {
		var item domain.RegisteredEvent
		reg := &item.Registration
		e := &item.Event
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.EventID, &reg.RegisteredAt,
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Capacity, &e.Registered, &e.Status, &e.ImageURL, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ domain.RegistrationRepository = (*RegistrationRepositoryPG)(nil)
