package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "schoolhub/internal/models/db_models"
)

// DashboardRepository aggregates tenant KPIs for the school dashboard.
type DashboardRepository interface {
	CountNotices(ctx context.Context, schoolID string) (int64, error)
	CountVehicles(ctx context.Context, schoolID string) (int64, error)
	FeesCollected(ctx context.Context, schoolID string) (int64, error)
	FeesOutstanding(ctx context.Context, schoolID string) (int64, error)
	RecentActivity(ctx context.Context, schoolID string, limit int) ([]dbm.ActivityLog, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountNotices(ctx context.Context, schoolID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Notice{}).
		Where("school_id = ?", schoolID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountVehicles(ctx context.Context, schoolID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Vehicle{}).
		Where("school_id = ?", schoolID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) FeesCollected(ctx context.Context, schoolID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&dbm.FeeRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("school_id = ? AND status = ?", schoolID, dbm.FeeStatusPaid).
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) FeesOutstanding(ctx context.Context, schoolID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&dbm.FeeRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("school_id = ? AND status = ?", schoolID, dbm.FeeStatusUnpaid).
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) RecentActivity(ctx context.Context, schoolID string, limit int) ([]dbm.ActivityLog, error) {
	var activity []dbm.ActivityLog
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activity).Error
	return activity, err
}
