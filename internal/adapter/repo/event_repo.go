package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// EventRepositoryPG implements domain.EventRepository backed by PostgreSQL.
type EventRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewEventRepository creates a new EventRepositoryPG.
func NewEventRepository(sql infra.SQLExecutor) *EventRepositoryPG {
	return &EventRepositoryPG{sql: sql}
}

// Create inserts a new event with a zero registered counter.
func (r *EventRepositoryPG) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertEvent,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.Capacity,
		string(event.Status),
		event.ImageURL,
	)
	return scanEvent(row)
}

// GetByID fetches an event by UUID.
func (r *EventRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return scanEvent(r.sql.QueryRow(ctx, sqlinline.QSelectEventByID, id))
}

// List returns all events, most recent date first.
func (r *EventRepositoryPG) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Capacity, &e.Registered, &e.Status, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update applies a partial update. Lowering capacity below the current
// registered count trips the table check constraint and surfaces as
// domain.ErrCapacityBelowCount.
func (r *EventRepositoryPG) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateEvent,
		id,
		patch.Title,
		patch.Description,
		patch.Date,
		patch.Location,
		patch.Capacity,
		status,
		patch.ImageURL,
	)
	event, err := scanEvent(row)
	if err != nil {
		if infra.IsCheckViolation(err) {
			return nil, domain.ErrCapacityBelowCount
		}
		return nil, err
	}
	return event, nil
}

// Delete removes an event. Missing IDs surface as domain.ErrNotFound.
func (r *EventRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteEvent, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Capacity, &e.Registered, &e.Status, &e.ImageURL, &e.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

var _ domain.EventRepository = (*EventRepositoryPG)(nil)
