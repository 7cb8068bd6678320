package services

import (
	"context"

	"github.com/google/uuid"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

type StudentServiceInterface interface {
	CreateStudent(ctx context.Context, schoolID uuid.UUID, request request_models.CreateStudentRequest) (*db_models.Student, error)
	ListStudents(ctx context.Context, schoolID string, page, pageSize int) ([]db_models.Student, error)
	DeleteStudent(ctx context.Context, schoolID, id string) error
}

type StudentService struct {
	studentRepo repositories.StudentRepository
}

func NewStudentService(studentRepo repositories.StudentRepository) StudentServiceInterface {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) CreateStudent(ctx context.Context, schoolID uuid.UUID, request request_models.CreateStudentRequest) (*db_models.Student, error) {
	student := &db_models.Student{
		SchoolID:      schoolID,
		Name:          request.Name,
		AdmissionNo:   request.AdmissionNo,
		GuardianName:  request.GuardianName,
		GuardianPhone: request.GuardianPhone,
	}
	if request.ClassID != "" {
		if classID, err := uuid.Parse(request.ClassID); err == nil {
			student.ClassID = &classID
		}
	}

	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return student, nil
}

func (s *StudentService) ListStudents(ctx context.Context, schoolID string, page, pageSize int) ([]db_models.Student, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	students, err := s.studentRepo.ListBySchool(ctx, schoolID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return students, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, schoolID, id string) error {
	if err := s.studentRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
