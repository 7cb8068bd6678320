package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

// PromoQuote is the priced result of a valid code. Discount is clamped so
// that FinalPrice = Price - Discount never drops below one rupee: a promo
// can never make a plan free.
type PromoQuote struct {
	PromoID    uuid.UUID
	Code       string
	Discount   int64
	FinalPrice int64
}

type PromoServiceInterface interface {
	ValidateAndPrice(ctx context.Context, code, planID string, today time.Time) (*PromoQuote, error)
	// ConsumeUsage burns one use at order-creation time. An abandoned
	// checkout therefore still consumes a use; kept deliberately, see the
	// design notes.
	ConsumeUsage(ctx context.Context, promoID uuid.UUID) error

	CreatePromo(ctx context.Context, promo *db_models.PromoCode) error
	ListPromos(ctx context.Context) ([]db_models.PromoCode, error)
	DeactivatePromo(ctx context.Context, id string) error
}

type PromoService struct {
	promoRepo repositories.PromoRepository
	catalog   *PlanCatalog
}

func NewPromoService(promoRepo repositories.PromoRepository, catalog *PlanCatalog) PromoServiceInterface {
	return &PromoService{
		promoRepo: promoRepo,
		catalog:   catalog,
	}
}

// ValidateAndPrice short-circuits on the first failing rule: existence and
// status, then date window (inclusive by calendar day), then usage cap, then
// plan applicability.
func (p *PromoService) ValidateAndPrice(ctx context.Context, code, planID string, today time.Time) (*PromoQuote, error) {
	plan, err := p.catalog.Get(planID)
	if err != nil {
		return nil, err
	}

	promo, err := p.promoRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if promo == nil {
		return nil, &utils.PromoInvalidError{Reason: utils.PromoNotFound}
	}
	if promo.Status != db_models.PromoActive {
		return nil, &utils.PromoInvalidError{Reason: utils.PromoInactive}
	}

	if !utils.SameOrAfterDay(today, utils.FromUnixSecondsIST(promo.ValidFrom)) {
		return nil, &utils.PromoInvalidError{Reason: utils.PromoNotStarted}
	}
	if !utils.SameOrBeforeDay(today, utils.FromUnixSecondsIST(promo.ValidTo)) {
		return nil, &utils.PromoInvalidError{Reason: utils.PromoExpired}
	}

	if promo.UsageLimit != nil && promo.CurrentUsage >= *promo.UsageLimit {
		return nil, &utils.PromoInvalidError{Reason: utils.PromoLimitExceeded}
	}

	if !planApplies(promo.ApplicablePlans, plan.ID) {
		return nil, &utils.PromoInvalidError{Reason: utils.PromoNotApplicable}
	}

	var discount int64
	switch promo.Type {
	case db_models.PromoPercentage:
		discount = int64(math.Round(float64(plan.Price) * float64(promo.Value) / 100))
	default:
		discount = promo.Value
	}

	// Minimum chargeable amount is one rupee.
	if discount > plan.Price-1 {
		discount = plan.Price - 1
	}
	if discount < 0 {
		discount = 0
	}

	return &PromoQuote{
		PromoID:    promo.ID,
		Code:       promo.Code,
		Discount:   discount,
		FinalPrice: plan.Price - discount,
	}, nil
}

func (p *PromoService) ConsumeUsage(ctx context.Context, promoID uuid.UUID) error {
	ok, err := p.promoRepo.IncrementUsage(ctx, promoID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return &utils.PromoInvalidError{Reason: utils.PromoLimitExceeded}
	}
	return nil
}

func (p *PromoService) CreatePromo(ctx context.Context, promo *db_models.PromoCode) error {
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))
	if promo.Status == "" {
		promo.Status = db_models.PromoActive
	}
	return p.promoRepo.Insert(ctx, promo)
}

func (p *PromoService) ListPromos(ctx context.Context) ([]db_models.PromoCode, error) {
	promos, err := p.promoRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return promos, nil
}

func (p *PromoService) DeactivatePromo(ctx context.Context, id string) error {
	return p.promoRepo.SetStatus(ctx, id, db_models.PromoInactive)
}

func planApplies(applicable, planID string) bool {
	for _, entry := range strings.Split(applicable, ",") {
		entry = strings.TrimSpace(entry)
		if strings.EqualFold(entry, "all") || strings.EqualFold(entry, planID) {
			return true
		}
	}
	return false
}
