package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideCatalog, provideStatsRepo, providePlanService, providePlanController)

func provideCatalog() *services.PlanCatalog {
	return services.DefaultPlanCatalog()
}

func provideStatsRepo(db *gorm.DB) repositories.ResourceStatsRepository {
	return repositories.NewResourceStatsRepository(db)
}

func providePlanService(
	catalog *services.PlanCatalog,
	schoolRepo repositories.SchoolRepository,
	statsRepo repositories.ResourceStatsRepository,
	entitlement services.EntitlementServiceInterface,
) services.PlanServiceInterface {
	return services.NewPlanService(catalog, schoolRepo, statsRepo, entitlement)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
