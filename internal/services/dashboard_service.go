package services

import (
	"context"

	"schoolhub/internal/models/response_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

const recentActivityLimit = 10

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context, schoolID string) (*response_models.DashboardSummary, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
	statsRepo     repositories.ResourceStatsRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository, statsRepo repositories.ResourceStatsRepository) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		statsRepo:     statsRepo,
	}
}

func (s *DashboardService) GetSummary(ctx context.Context, schoolID string) (*response_models.DashboardSummary, error) {
	summary := &response_models.DashboardSummary{}

	var err error
	if summary.Students, err = s.statsRepo.CountStudents(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary.Teachers, err = s.statsRepo.CountTeachers(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary.Classes, err = s.statsRepo.CountClasses(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary.Notices, err = s.dashboardRepo.CountNotices(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary.Vehicles, err = s.dashboardRepo.CountVehicles(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary.FeesCollected, err = s.dashboardRepo.FeesCollected(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary.FeesOutstanding, err = s.dashboardRepo.FeesOutstanding(ctx, schoolID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	activity, err := s.dashboardRepo.RecentActivity(ctx, schoolID, recentActivityLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary.RecentActivity = make([]response_models.ActivityEntry, 0, len(activity))
	for _, entry := range activity {
		summary.RecentActivity = append(summary.RecentActivity, response_models.ActivityEntry{
			Action:    entry.Action,
			Actor:     entry.Actor,
			CreatedAt: entry.CreatedAt,
		})
	}

	return summary, nil
}
