package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

type TeacherRepository interface {
	Insert(ctx context.Context, teacher *db_models.Teacher) error
	FindById(ctx context.Context, schoolID, id string) (*db_models.Teacher, error)
	ListBySchool(ctx context.Context, schoolID string) ([]db_models.Teacher, error)
	Update(ctx context.Context, teacher *db_models.Teacher) error
	Delete(ctx context.Context, schoolID, id string) error
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Insert(ctx context.Context, teacher *db_models.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) FindById(ctx context.Context, schoolID, id string) (*db_models.Teacher, error) {
	var teacher db_models.Teacher
	err := r.db.WithContext(ctx).
		First(&teacher, "id = ? AND school_id = ?", id, schoolID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &teacher, nil
}

func (r *teacherRepository) ListBySchool(ctx context.Context, schoolID string) ([]db_models.Teacher, error) {
	var teachers []db_models.Teacher
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepository) Update(ctx context.Context, teacher *db_models.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Teacher{}).Error
}
