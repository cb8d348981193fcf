package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Stats are the aggregate counts shown on the homepage hero section.
type Stats struct {
	TotalBusinesses int `json:"totalBusinesses"`
	TotalEvents     int `json:"totalEvents"`
	TotalUsers      int `json:"totalUsers"`
}

// StatsRepository exposes the homepage counters
type StatsRepository interface {
	Counts(ctx context.Context) (*Stats, error)
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new instance of StatsRepository
func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Counts returns verified business, published event, and registered
// user totals in one round trip.
func (r *statsRepository) Counts(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM business_profiles WHERE is_verified = TRUE),
			(SELECT COUNT(*) FROM events WHERE is_published = TRUE),
			(SELECT COUNT(*) FROM users)
	`

	stats := &Stats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalBusinesses,
		&stats.TotalEvents,
		&stats.TotalUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	return stats, nil
}
