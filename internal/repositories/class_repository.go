package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

type ClassRepository interface {
	Insert(ctx context.Context, class *db_models.Class) error
	FindById(ctx context.Context, schoolID, id string) (*db_models.Class, error)
	ListBySchool(ctx context.Context, schoolID string) ([]db_models.Class, error)
	Update(ctx context.Context, class *db_models.Class) error
	Delete(ctx context.Context, schoolID, id string) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Insert(ctx context.Context, class *db_models.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindById(ctx context.Context, schoolID, id string) (*db_models.Class, error) {
	var class db_models.Class
	err := r.db.WithContext(ctx).
		First(&class, "id = ? AND school_id = ?", id, schoolID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &class, nil
}

func (r *classRepository) ListBySchool(ctx context.Context, schoolID string) ([]db_models.Class, error) {
	var classes []db_models.Class
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("created_at ASC").
		Find(&classes).Error
	return classes, err
}

func (r *classRepository) Update(ctx context.Context, class *db_models.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Class{}).Error
}
