package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/synchomes/synchomes-api/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

// GetStats retrieves entity totals and the per-category project distribution.
func (r *dashboardRepository) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{ProjectsByCategory: make(map[model.ProjectCategory]int)}

	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM subscribers)`,
	).Scan(&stats.Projects, &stats.Clients, &stats.Contacts, &stats.Subscribers)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM projects GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for _, c := range model.ProjectCategories {
		stats.ProjectsByCategory[c] = 0
	}
	for rows.Next() {
		var category model.ProjectCategory
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ProjectsByCategory[category] = count
	}
	return stats, rows.Err()
}
