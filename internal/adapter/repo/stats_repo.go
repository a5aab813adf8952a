package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository backed by PostgreSQL.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a new StatsRepositoryPG.
func NewStatsRepository(sql infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sql}
}

// Summary returns the admin dashboard aggregates in one statement.
func (r *StatsRepositoryPG) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QStatsSummary)
	var s domain.StatsSummary
	if err := row.Scan(
		&s.TotalEvents,
		&s.UpcomingEvents,
		&s.TotalDonations,
		&s.TotalDonationsAmount,
		&s.TotalApplications,
		&s.PendingApplications,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
