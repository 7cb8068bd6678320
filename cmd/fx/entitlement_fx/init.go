package entitlement_fx

import (
	"go.uber.org/fx"

	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
	"schoolhub/pkg/middleware"
)

var Module = fx.Provide(
	provideEntitlementService, providePlanGuard)

func provideEntitlementService(catalog *services.PlanCatalog, stats repositories.ResourceStatsRepository) services.EntitlementServiceInterface {
	return services.NewEntitlementService(catalog, stats)
}

func providePlanGuard(schoolRepo repositories.SchoolRepository, entitlements services.EntitlementServiceInterface) *middleware.PlanGuard {
	return middleware.NewPlanGuard(schoolRepo, entitlements)
}
