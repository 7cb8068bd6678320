package repositories

import (
	"context"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

// Small tenant-scoped stores for the campus features (notices, homework,
// fees, vehicles, events). Create/list/delete is the surface the frontend
// actually uses for these.

type NoticeRepository interface {
	Insert(ctx context.Context, notice *db_models.Notice) error
	ListBySchool(ctx context.Context, schoolID string) ([]db_models.Notice, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type HomeworkRepository interface {
	Insert(ctx context.Context, hw *db_models.Homework) error
	ListBySchool(ctx context.Context, schoolID string) ([]db_models.Homework, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type FeeRepository interface {
	Insert(ctx context.Context, fee *db_models.FeeRecord) error
	ListByStudent(ctx context.Context, schoolID, studentID string) ([]db_models.FeeRecord, error)
	MarkPaid(ctx context.Context, schoolID, id, mode string, paidAt int64) error
}

type VehicleRepository interface {
	Insert(ctx context.Context, v *db_models.Vehicle) error
	ListBySchool(ctx context.Context, schoolID string) ([]db_models.Vehicle, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type EventRepository interface {
	Insert(ctx context.Context, e *db_models.Event) error
	ListBySchool(ctx context.Context, schoolID string) ([]db_models.Event, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type noticeRepository struct{ db *gorm.DB }

func NewNoticeRepository(db *gorm.DB) NoticeRepository { return &noticeRepository{db: db} }

func (r *noticeRepository) Insert(ctx context.Context, notice *db_models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) ListBySchool(ctx context.Context, schoolID string) ([]db_models.Notice, error) {
	var notices []db_models.Notice
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("published_at DESC").
		Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Notice{}).Error
}

type homeworkRepository struct{ db *gorm.DB }

func NewHomeworkRepository(db *gorm.DB) HomeworkRepository { return &homeworkRepository{db: db} }

func (r *homeworkRepository) Insert(ctx context.Context, hw *db_models.Homework) error {
	return r.db.WithContext(ctx).Create(hw).Error
}

func (r *homeworkRepository) ListBySchool(ctx context.Context, schoolID string) ([]db_models.Homework, error) {
	var homework []db_models.Homework
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("due_at ASC").
		Find(&homework).Error
	return homework, err
}

func (r *homeworkRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Homework{}).Error
}

type feeRepository struct{ db *gorm.DB }

func NewFeeRepository(db *gorm.DB) FeeRepository { return &feeRepository{db: db} }

func (r *feeRepository) Insert(ctx context.Context, fee *db_models.FeeRecord) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *feeRepository) ListByStudent(ctx context.Context, schoolID, studentID string) ([]db_models.FeeRecord, error) {
	var fees []db_models.FeeRecord
	err := r.db.WithContext(ctx).
		Where("school_id = ? AND student_id = ?", schoolID, studentID).
		Order("period DESC").
		Find(&fees).Error
	return fees, err
}

func (r *feeRepository) MarkPaid(ctx context.Context, schoolID, id, mode string, paidAt int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.FeeRecord{}).
		Where("id = ? AND school_id = ?", id, schoolID).
		Updates(map[string]interface{}{
			"status":  db_models.FeeStatusPaid,
			"mode":    mode,
			"paid_at": paidAt,
		}).Error
}

type vehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepository{db: db} }

func (r *vehicleRepository) Insert(ctx context.Context, v *db_models.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepository) ListBySchool(ctx context.Context, schoolID string) ([]db_models.Vehicle, error) {
	var vehicles []db_models.Vehicle
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("registration_no ASC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Vehicle{}).Error
}

type eventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &eventRepository{db: db} }

func (r *eventRepository) Insert(ctx context.Context, e *db_models.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepository) ListBySchool(ctx context.Context, schoolID string) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Delete(ctx context.Context, schoolID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&db_models.Event{}).Error
}
