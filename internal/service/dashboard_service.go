package service

import (
	"context"

	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetStats returns the overview counters shown on the dashboard.
func (s *DashboardService) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	return s.repo.GetStats(ctx)
}
