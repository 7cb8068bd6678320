package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
	"schoolhub/pkg/utils"
)

type ReferralRepository interface {
	InsertPartner(ctx context.Context, partner *db_models.Partner) error
	FindPartnerByCode(ctx context.Context, code string) (*db_models.Partner, error)
	FindPartnerById(ctx context.Context, id string) (*db_models.Partner, error)
	ListPartners(ctx context.Context) ([]db_models.Partner, error)
	InsertCommission(ctx context.Context, commission *db_models.ReferralCommission) error
	ListCommissionsByPartner(ctx context.Context, partnerID string) ([]db_models.ReferralCommission, error)
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) InsertPartner(ctx context.Context, partner *db_models.Partner) error {
	err := r.db.WithContext(ctx).Create(partner).Error
	if isUniqueViolation(err) {
		return utils.ErrDuplicateCode
	}
	return err
}

func (r *referralRepository) FindPartnerByCode(ctx context.Context, code string) (*db_models.Partner, error) {
	var partner db_models.Partner
	err := r.db.WithContext(ctx).
		First(&partner, "UPPER(referral_code) = UPPER(?)", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &partner, nil
}

func (r *referralRepository) FindPartnerById(ctx context.Context, id string) (*db_models.Partner, error) {
	var partner db_models.Partner
	err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &partner, nil
}

func (r *referralRepository) ListPartners(ctx context.Context) ([]db_models.Partner, error) {
	var partners []db_models.Partner
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&partners).Error
	return partners, err
}

func (r *referralRepository) InsertCommission(ctx context.Context, commission *db_models.ReferralCommission) error {
	return r.db.WithContext(ctx).Create(commission).Error
}

func (r *referralRepository) ListCommissionsByPartner(ctx context.Context, partnerID string) ([]db_models.ReferralCommission, error) {
	var commissions []db_models.ReferralCommission
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&commissions).Error
	return commissions, err
}
