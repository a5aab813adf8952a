package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// VolunteerRepositoryPG implements domain.ApplicationRepository backed by
// PostgreSQL.
type VolunteerRepositoryPG struct {
	sql infra.TxRunner
}

// NewVolunteerRepository creates a new VolunteerRepositoryPG.
func NewVolunteerRepository(sql infra.TxRunner) *VolunteerRepositoryPG {
	return &VolunteerRepositoryPG{sql: sql}
}

// Create inserts a pending application. The unique index on user_id turns a
// concurrent duplicate into domain.ErrAlreadyApplied regardless of what the
// workflow pre-check saw.
func (r *VolunteerRepositoryPG) Create(ctx context.Context, application *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertApplication,
		application.UserID,
		application.Interests,
		application.Availability,
		application.Message,
	)
	created, err := scanApplication(row)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, err
	}
	return created, nil
}

// GetByUser fetches the user's application, if any.
func (r *VolunteerRepositoryPG) GetByUser(ctx context.Context, userID string) (*domain.VolunteerApplication, error) {
	return scanApplication(r.sql.QueryRow(ctx, sqlinline.QSelectApplicationByUser, userID))
}

// List returns every application, newest first.
func (r *VolunteerRepositoryPG) List(ctx context.Context) ([]domain.VolunteerApplication, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListApplications)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.VolunteerApplication
	for rows.Next() {
		var a domain.VolunteerApplication
		if err := rows.Scan(&a.ID, &a.UserID, &a.Interests, &a.Availability, &a.Message, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// SetStatus reviews an application. The row is locked for the duration of the
// transaction, only pending applications may transition, and an approval
// writes the applicant's role promotion in the same transaction as the status
// so neither can land without the other.
func (r *VolunteerRepositoryPG) SetStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.VolunteerApplication, error) {
	var app *domain.VolunteerApplication
	err := r.sql.WithTx(ctx, func(tx infra.SQLExecutor) error {
		current, err := scanApplication(tx.QueryRow(ctx, sqlinline.QSelectApplicationForUpdate, id))
		if err != nil {
			return err
		}
		if current.Status != domain.ApplicationPending {
			return domain.ErrApplicationReviewed
		}
		if _, err := tx.Exec(ctx, sqlinline.QUpdateApplicationStatus, id, string(status)); err != nil {
			return err
		}
		if status == domain.ApplicationApproved {
			if _, err := tx.Exec(ctx, sqlinline.QUpdateUserRole, current.UserID, string(domain.UserRoleVolunteer)); err != nil {
				return err
			}
		}
		current.Status = status
		app = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func scanApplication(row pgx.Row) (*domain.VolunteerApplication, error) {
	var a domain.VolunteerApplication
	if err := row.Scan(&a.ID, &a.UserID, &a.Interests, &a.Availability, &a.Message, &a.Status, &a.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

var _ domain.ApplicationRepository = (*VolunteerRepositoryPG)(nil)
