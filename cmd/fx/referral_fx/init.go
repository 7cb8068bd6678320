package referral_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideReferralRepo, provideReferralService, provideReferralController)

func provideReferralRepo(db *gorm.DB) repositories.ReferralRepository {
	return repositories.NewReferralRepository(db)
}

func provideReferralService(referralRepo repositories.ReferralRepository) services.ReferralServiceInterface {
	return services.NewReferralService(referralRepo)
}

func provideReferralController(referralService services.ReferralServiceInterface) *controllers.ReferralController {
	return controllers.NewReferralController(referralService)
}
