package services

import (
	"context"

	"github.com/google/uuid"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

type ClassServiceInterface interface {
	CreateClass(ctx context.Context, schoolID uuid.UUID, request request_models.CreateClassRequest) (*db_models.Class, error)
	ListClasses(ctx context.Context, schoolID string) ([]db_models.Class, error)
	DeleteClass(ctx context.Context, schoolID, id string) error
}

type ClassService struct {
	classRepo repositories.ClassRepository
}

func NewClassService(classRepo repositories.ClassRepository) ClassServiceInterface {
	return &ClassService{classRepo: classRepo}
}

func (s *ClassService) CreateClass(ctx context.Context, schoolID uuid.UUID, request request_models.CreateClassRequest) (*db_models.Class, error) {
	class := &db_models.Class{
		SchoolID: schoolID,
		Name:     request.Name,
		Section:  request.Section,
		Capacity: request.Capacity,
	}
	if request.TeacherID != "" {
		if teacherID, err := uuid.Parse(request.TeacherID); err == nil {
			class.TeacherID = &teacherID
		}
	}

	if err := s.classRepo.Insert(ctx, class); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return class, nil
}

func (s *ClassService) ListClasses(ctx context.Context, schoolID string) ([]db_models.Class, error) {
	classes, err := s.classRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return classes, nil
}

func (s *ClassService) DeleteClass(ctx context.Context, schoolID, id string) error {
	if err := s.classRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
