package services

import (
	"context"

	"github.com/google/uuid"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

type TeacherServiceInterface interface {
	CreateTeacher(ctx context.Context, schoolID uuid.UUID, request request_models.CreateTeacherRequest) (*db_models.Teacher, error)
	ListTeachers(ctx context.Context, schoolID string) ([]db_models.Teacher, error)
	DeleteTeacher(ctx context.Context, schoolID, id string) error
}

type TeacherService struct {
	teacherRepo repositories.TeacherRepository
}

func NewTeacherService(teacherRepo repositories.TeacherRepository) TeacherServiceInterface {
	return &TeacherService{teacherRepo: teacherRepo}
}

func (s *TeacherService) CreateTeacher(ctx context.Context, schoolID uuid.UUID, request request_models.CreateTeacherRequest) (*db_models.Teacher, error) {
	teacher := &db_models.Teacher{
		SchoolID: schoolID,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Subject:  request.Subject,
	}

	if err := s.teacherRepo.Insert(ctx, teacher); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return teacher, nil
}

func (s *TeacherService) ListTeachers(ctx context.Context, schoolID string) ([]db_models.Teacher, error) {
	teachers, err := s.teacherRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return teachers, nil
}

func (s *TeacherService) DeleteTeacher(ctx context.Context, schoolID, id string) error {
	if err := s.teacherRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
