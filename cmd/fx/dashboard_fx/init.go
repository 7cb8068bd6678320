package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideDashboardController)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, statsRepo repositories.ResourceStatsRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, statsRepo)
}

func provideDashboardController(dashboardService services.DashboardServiceInterface) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService)
}
