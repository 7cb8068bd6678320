package promo_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	providePromoRepo, providePromoService, providePromoController)

func providePromoRepo(db *gorm.DB) repositories.PromoRepository {
	return repositories.NewPromoRepository(db)
}

func providePromoService(promoRepo repositories.PromoRepository, catalog *services.PlanCatalog) services.PromoServiceInterface {
	return services.NewPromoService(promoRepo, catalog)
}

func providePromoController(promoService services.PromoServiceInterface) *controllers.PromoController {
	return controllers.NewPromoController(promoService)
}
