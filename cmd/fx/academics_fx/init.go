package academics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideClassRepo, provideStudentRepo, provideTeacherRepo,
	provideClassService, provideStudentService, provideTeacherService,
	provideAcademicsController)

func provideClassRepo(db *gorm.DB) repositories.ClassRepository {
	return repositories.NewClassRepository(db)
}

func provideStudentRepo(db *gorm.DB) repositories.StudentRepository {
	return repositories.NewStudentRepository(db)
}

func provideTeacherRepo(db *gorm.DB) repositories.TeacherRepository {
	return repositories.NewTeacherRepository(db)
}

func provideClassService(classRepo repositories.ClassRepository) services.ClassServiceInterface {
	return services.NewClassService(classRepo)
}

func provideStudentService(studentRepo repositories.StudentRepository) services.StudentServiceInterface {
	return services.NewStudentService(studentRepo)
}

func provideTeacherService(teacherRepo repositories.TeacherRepository) services.TeacherServiceInterface {
	return services.NewTeacherService(teacherRepo)
}

func provideAcademicsController(
	classService services.ClassServiceInterface,
	studentService services.StudentServiceInterface,
	teacherService services.TeacherServiceInterface,
) *controllers.AcademicsController {
	return controllers.NewAcademicsController(classService, studentService, teacherService)
}
