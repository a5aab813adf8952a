package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository backed by
// PostgreSQL. Amounts travel as decimal strings and are stored as numeric.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new DonationRepositoryPG.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Create inserts a new donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.UserID,
		donation.Amount,
		string(donation.Status),
		donation.PaymentID,
	)
	return scanDonation(row)
}

// List returns every donation, newest first.
func (r *DonationRepositoryPG) List(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDonations(rows)
}

// ListByUser returns a user's donations, newest first.
func (r *DonationRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListUserDonations, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDonations(rows)
}

// TotalCompleted returns the sum of completed donations as a decimal string.
func (r *DonationRepositoryPG) TotalCompleted(ctx context.Context) (string, error) {
	var total string
	if err := r.sql.QueryRow(ctx, sqlinline.QTotalCompletedDonations).Scan(&total); err != nil {
		return "", err
	}
	return total, nil
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.Status, &d.PaymentID, &d.CreatedAt); err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	if err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.Status, &d.PaymentID, &d.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
