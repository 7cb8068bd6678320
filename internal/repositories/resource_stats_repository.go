package repositories

import (
	"context"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

// ResourceStatsRepository answers the count queries behind plan-limit
// checks. Counts are scoped to one tenant's rows.
type ResourceStatsRepository interface {
	CountClasses(ctx context.Context, schoolID string) (int64, error)
	CountStudents(ctx context.Context, schoolID string) (int64, error)
	CountTeachers(ctx context.Context, schoolID string) (int64, error)
}

type resourceStatsRepository struct {
	db *gorm.DB
}

func NewResourceStatsRepository(db *gorm.DB) ResourceStatsRepository {
	return &resourceStatsRepository{db: db}
}

func (r *resourceStatsRepository) CountClasses(ctx context.Context, schoolID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Class{}).
		Where("school_id = ?", schoolID).
		Count(&n).Error
	return n, err
}

func (r *resourceStatsRepository) CountStudents(ctx context.Context, schoolID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Student{}).
		Where("school_id = ?", schoolID).
		Count(&n).Error
	return n, err
}

func (r *resourceStatsRepository) CountTeachers(ctx context.Context, schoolID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Teacher{}).
		Where("school_id = ?", schoolID).
		Count(&n).Error
	return n, err
}
