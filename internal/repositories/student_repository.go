package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

type StudentRepository interface {
	Insert(ctx context.Context, student *db_models.Student) error
	FindById(ctx context.Context, schoolID, id string) (*db_models.Student, error)
	ListBySchool(ctx context.Context, schoolID string, page, pageSize int) ([]db_models.Student, error)
	Update(ctx context.Context, student *db_models.Student) error
	Delete(ctx context.Context, schoolID, id string) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Insert(ctx context.Context, student *db_models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindById(ctx context.Context, schoolID, id string) (*db_models.Student, error) {
	var student db_models.Student
	err := r.db.WithContext(ctx).
		First(&student, "id = ? AND school_id = ?", id, schoolID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) ListBySchool(ctx context.Context, schoolID string, page, pageSize int) ([]db_models.Student, error) {
	var students []db_models.Student
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}

func (r *studentRepository) Update(ctx context.Context, student *db_models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Student{}).Error
}
