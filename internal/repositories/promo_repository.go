package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
	"schoolhub/pkg/utils"
)

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation as surfaced by the pgx driver underneath gorm's postgres dialect.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type PromoRepository interface {
	Insert(ctx context.Context, promo *db_models.PromoCode) error
	FindByCode(ctx context.Context, code string) (*db_models.PromoCode, error)
	List(ctx context.Context) ([]db_models.PromoCode, error)
	SetStatus(ctx context.Context, id string, status db_models.PromoStatus) error
	IncrementUsage(ctx context.Context, id string) (bool, error)
}

type promoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepository{db: db}
}

func (r *promoRepository) Insert(ctx context.Context, promo *db_models.PromoCode) error {
	err := r.db.WithContext(ctx).Create(promo).Error
	if isUniqueViolation(err) {
		return utils.ErrDuplicateCode
	}
	return err
}

func (r *promoRepository) FindByCode(ctx context.Context, code string) (*db_models.PromoCode, error) {
	var promo db_models.PromoCode
	err := r.db.WithContext(ctx).
		First(&promo, "LOWER(code) = LOWER(?)", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &promo, nil
}

func (r *promoRepository) List(ctx context.Context) ([]db_models.PromoCode, error) {
	var promos []db_models.PromoCode
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&promos).Error
	return promos, err
}

func (r *promoRepository) SetStatus(ctx context.Context, id string, status db_models.PromoStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PromoCode{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// IncrementUsage bumps current_usage only while it is below the usage limit,
// so concurrent checkouts cannot overrun a capped code. Returns false when
// the cap was already reached.
func (r *promoRepository) IncrementUsage(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.PromoCode{}).
		Where("id = ? AND (usage_limit IS NULL OR current_usage < usage_limit)", id).
		Update("current_usage", gorm.Expr("current_usage + 1"))

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
