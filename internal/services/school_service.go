package services

import (
	"context"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

type SchoolServiceInterface interface {
	GetProfile(ctx context.Context, schoolID string) (*db_models.School, error)
	UpdateProfile(ctx context.Context, schoolID string, fields map[string]interface{}) error
}

type SchoolService struct {
	schoolRepo repositories.SchoolRepository
}

func NewSchoolService(schoolRepo repositories.SchoolRepository) SchoolServiceInterface {
	return &SchoolService{schoolRepo: schoolRepo}
}

func (s *SchoolService) GetProfile(ctx context.Context, schoolID string) (*db_models.School, error) {
	school, err := s.schoolRepo.FindById(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if school == nil {
		return nil, utils.ErrSchoolNotFound
	}
	return school, nil
}

func (s *SchoolService) UpdateProfile(ctx context.Context, schoolID string, fields map[string]interface{}) error {
	if err := s.schoolRepo.UpdateProfile(ctx, schoolID, fields); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
