package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ContactRepositoryPG implements domain.ContactRepository backed by PostgreSQL.
type ContactRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContactRepository creates a new ContactRepositoryPG.
func NewContactRepository(sql infra.SQLExecutor) *ContactRepositoryPG {
	return &ContactRepositoryPG{sql: sql}
}

// Create inserts a new contact submission with status "new".
func (r *ContactRepositoryPG) Create(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertContact,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		submission.Country,
	)
	return scanContact(row)
}

// List returns every submission, newest first.
func (r *ContactRepositoryPG) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListContacts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.ContactSubmission
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Status, &s.Country, &s.CreatedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// SetStatus updates the triage status of a submission.
func (r *ContactRepositoryPG) SetStatus(ctx context.Context, id string, status domain.SubmissionStatus) (*domain.ContactSubmission, error) {
	return scanContact(r.sql.QueryRow(ctx, sqlinline.QUpdateContactStatus, id, string(status)))
}

func scanContact(row pgx.Row) (*domain.ContactSubmission, error) {
	var s domain.ContactSubmission
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Status, &s.Country, &s.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

var _ domain.ContactRepository = (*ContactRepositoryPG)(nil)
