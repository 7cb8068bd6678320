package school_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideSchoolRepo, provideSchoolService, provideSchoolController)

func provideSchoolRepo(db *gorm.DB) repositories.SchoolRepository {
	return repositories.NewSchoolRepository(db)
}

func provideSchoolService(schoolRepo repositories.SchoolRepository) services.SchoolServiceInterface {
	return services.NewSchoolService(schoolRepo)
}

func provideSchoolController(schoolService services.SchoolServiceInterface) *controllers.SchoolController {
	return controllers.NewSchoolController(schoolService)
}
