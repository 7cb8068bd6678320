package campus_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideNoticeRepo, provideHomeworkRepo, provideFeeRepo, provideVehicleRepo, provideEventRepo,
	provideNoticeService, provideHomeworkService, provideFeeService, provideVehicleService, provideEventService,
	provideCampusController)

func provideNoticeRepo(db *gorm.DB) repositories.NoticeRepository {
	return repositories.NewNoticeRepository(db)
}

func provideHomeworkRepo(db *gorm.DB) repositories.HomeworkRepository {
	return repositories.NewHomeworkRepository(db)
}

func provideFeeRepo(db *gorm.DB) repositories.FeeRepository {
	return repositories.NewFeeRepository(db)
}

func provideVehicleRepo(db *gorm.DB) repositories.VehicleRepository {
	return repositories.NewVehicleRepository(db)
}

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideNoticeService(noticeRepo repositories.NoticeRepository) services.NoticeServiceInterface {
	return services.NewNoticeService(noticeRepo)
}

func provideHomeworkService(homeworkRepo repositories.HomeworkRepository) services.HomeworkServiceInterface {
	return services.NewHomeworkService(homeworkRepo)
}

func provideFeeService(feeRepo repositories.FeeRepository, studentRepo repositories.StudentRepository) services.FeeServiceInterface {
	return services.NewFeeService(feeRepo, studentRepo)
}

func provideVehicleService(vehicleRepo repositories.VehicleRepository) services.VehicleServiceInterface {
	return services.NewVehicleService(vehicleRepo)
}

func provideEventService(eventRepo repositories.EventRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo)
}

func provideCampusController(
	noticeService services.NoticeServiceInterface,
	homeworkService services.HomeworkServiceInterface,
	feeService services.FeeServiceInterface,
	vehicleService services.VehicleServiceInterface,
	eventService services.EventServiceInterface,
) *controllers.CampusController {
	return controllers.NewCampusController(noticeService, homeworkService, feeService, vehicleService, eventService)
}
