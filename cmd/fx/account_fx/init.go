package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
	mem "schoolhub/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	schoolRepo repositories.SchoolRepository,
	referralRepo repositories.ReferralRepository,
	catalog *services.PlanCatalog,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, schoolRepo, referralRepo, catalog, mailService, resetTokens)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
