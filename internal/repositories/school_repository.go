package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

type SchoolRepository interface {
	Insert(ctx context.Context, school *db_models.School) error
	FindById(ctx context.Context, id string) (*db_models.School, error)
	FindByEmail(ctx context.Context, email string) (*db_models.School, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error
}

type schoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) Insert(ctx context.Context, school *db_models.School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *schoolRepository) FindById(ctx context.Context, id string) (*db_models.School, error) {
	var school db_models.School
	err := r.db.WithContext(ctx).First(&school, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &school, nil
}

func (r *schoolRepository) FindByEmail(ctx context.Context, email string) (*db_models.School, error) {
	var school db_models.School
	err := r.db.WithContext(ctx).First(&school, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &school, nil
}

// UpdateProfile touches non-plan fields only. Plan fields are owned by the
// billing repository's verified-order transaction.
func (r *schoolRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	delete(fields, "plan_type")
	delete(fields, "plan_expires_at")
	delete(fields, "max_students")
	delete(fields, "max_classes")

	return r.db.WithContext(ctx).
		Model(&db_models.School{}).
		Where("id = ?", id).
		Updates(fields).Error
}
