package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// fakePromoRepo holds promos in memory and mimics the repository's
// conditional usage increment.
type fakePromoRepo struct {
	promos map[string]*db_models.PromoCode
}

func newFakePromoRepo(promos ...*db_models.PromoCode) *fakePromoRepo {
	repo := &fakePromoRepo{promos: map[string]*db_models.PromoCode{}}
	for _, p := range promos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.promos[strings.ToUpper(p.Code)] = p
	}
	return repo
}

func (f *fakePromoRepo) Insert(ctx context.Context, promo *db_models.PromoCode) error {
	if _, ok := f.promos[strings.ToUpper(promo.Code)]; ok {
		return utils.ErrDuplicateCode
	}
	promo.ID = uuid.New()
	f.promos[strings.ToUpper(promo.Code)] = promo
	return nil
}

func (f *fakePromoRepo) FindByCode(ctx context.Context, code string) (*db_models.PromoCode, error) {
	promo, ok := f.promos[strings.ToUpper(code)]
	if !ok {
		return nil, nil
	}
	return promo, nil
}

func (f *fakePromoRepo) List(ctx context.Context) ([]db_models.PromoCode, error) {
	out := make([]db_models.PromoCode, 0, len(f.promos))
	for _, p := range f.promos {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePromoRepo) SetStatus(ctx context.Context, id string, status db_models.PromoStatus) error {
	for _, p := range f.promos {
		if p.ID.String() == id {
			p.Status = status
			return nil
		}
	}
	return nil
}

func (f *fakePromoRepo) IncrementUsage(ctx context.Context, id string) (bool, error) {
	for _, p := range f.promos {
		if p.ID.String() != id {
			continue
		}
		if p.UsageLimit != nil && p.CurrentUsage >= *p.UsageLimit {
			return false, nil
		}
		p.CurrentUsage++
		return true, nil
	}
	return false, nil
}

func int64Ptr(v int64) *int64 { return &v }

func activePromo(code string, typ db_models.PromoType, value int64) *db_models.PromoCode {
	now := time.Now()
	return &db_models.PromoCode{
		Code:            code,
		Type:            typ,
		Value:           value,
		ApplicablePlans: "all",
		ValidFrom:       now.AddDate(0, 0, -1).Unix(),
		ValidTo:         now.AddDate(0, 0, 30).Unix(),
		Status:          db_models.PromoActive,
	}
}

func TestPromoService_ValidateAndPrice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := services.DefaultPlanCatalog()
	now := time.Now()

	t.Run("percentage discount rounds and prices", func(t *testing.T) {
		t.Parallel()

		svc := services.NewPromoService(newFakePromoRepo(
			activePromo("SAVE20", db_models.PromoPercentage, 20)), catalog)

		quote, err := svc.ValidateAndPrice(ctx, "SAVE20", "basic", now)
		require.NoError(t, err)
		assert.Equal(t, int64(100), quote.Discount) // round(499 * 0.20)
		assert.Equal(t, int64(399), quote.FinalPrice)
	})

	t.Run("flat discount clamps to one rupee floor", func(t *testing.T) {
		t.Parallel()

		svc := services.NewPromoService(newFakePromoRepo(
			activePromo("BIGFLAT", db_models.PromoFlat, 600)), catalog)

		quote, err := svc.ValidateAndPrice(ctx, "BIGFLAT", "basic", now)
		require.NoError(t, err)
		assert.Equal(t, int64(498), quote.Discount)
		assert.Equal(t, int64(1), quote.FinalPrice)
	})

	t.Run("code lookup is case insensitive", func(t *testing.T) {
		t.Parallel()

		svc := services.NewPromoService(newFakePromoRepo(
			activePromo("SAVE20", db_models.PromoPercentage, 20)), catalog)

		quote, err := svc.ValidateAndPrice(ctx, "save20", "basic", now)
		require.NoError(t, err)
		assert.Equal(t, "SAVE20", quote.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()

		svc := services.NewPromoService(newFakePromoRepo(), catalog)

		_, err := svc.ValidateAndPrice(ctx, "NOPE", "basic", now)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoNotFound, promoErr.Reason)
	})

	t.Run("inactive code", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("OLD", db_models.PromoFlat, 50)
		promo.Status = db_models.PromoInactive
		svc := services.NewPromoService(newFakePromoRepo(promo), catalog)

		_, err := svc.ValidateAndPrice(ctx, "OLD", "basic", now)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoInactive, promoErr.Reason)
	})

	t.Run("valid_to day is inclusive", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("LASTDAY", db_models.PromoFlat, 50)
		promo.ValidTo = now.Unix() // expires today, still valid all day
		svc := services.NewPromoService(newFakePromoRepo(promo), catalog)

		_, err := svc.ValidateAndPrice(ctx, "LASTDAY", "basic", now)
		assert.NoError(t, err)
	})

	t.Run("expired by a full day", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("GONE", db_models.PromoFlat, 50)
		promo.ValidTo = now.AddDate(0, 0, -1).Unix()
		svc := services.NewPromoService(newFakePromoRepo(promo), catalog)

		_, err := svc.ValidateAndPrice(ctx, "GONE", "basic", now)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoExpired, promoErr.Reason)
	})

	t.Run("not yet started", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("SOON", db_models.PromoFlat, 50)
		promo.ValidFrom = now.AddDate(0, 0, 2).Unix()
		svc := services.NewPromoService(newFakePromoRepo(promo), catalog)

		_, err := svc.ValidateAndPrice(ctx, "SOON", "basic", now)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoNotStarted, promoErr.Reason)
	})

	t.Run("usage cap rejects even inside the window", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("CAPPED", db_models.PromoFlat, 50)
		promo.UsageLimit = int64Ptr(5)
		promo.CurrentUsage = 5
		svc := services.NewPromoService(newFakePromoRepo(promo), catalog)

		_, err := svc.ValidateAndPrice(ctx, "CAPPED", "basic", now)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoLimitExceeded, promoErr.Reason)
	})

	t.Run("plan applicability csv", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("PREMUP", db_models.PromoPercentage, 10)
		promo.ApplicablePlans = "standard, premium"
		svc := services.NewPromoService(newFakePromoRepo(promo), catalog)

		_, err := svc.ValidateAndPrice(ctx, "PREMUP", "premium", now)
		assert.NoError(t, err)

		_, err = svc.ValidateAndPrice(ctx, "PREMUP", "basic", now)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoNotApplicable, promoErr.Reason)
	})

	t.Run("unknown plan fails before promo lookup", func(t *testing.T) {
		t.Parallel()

		svc := services.NewPromoService(newFakePromoRepo(), catalog)

		_, err := svc.ValidateAndPrice(ctx, "SAVE20", "enterprise", now)
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})
}

func TestPromoService_ConsumeUsage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := services.DefaultPlanCatalog()

	t.Run("consumes up to the cap", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("TWICE", db_models.PromoFlat, 50)
		promo.UsageLimit = int64Ptr(2)
		repo := newFakePromoRepo(promo)
		svc := services.NewPromoService(repo, catalog)

		require.NoError(t, svc.ConsumeUsage(ctx, promo.ID))
		require.NoError(t, svc.ConsumeUsage(ctx, promo.ID))

		err := svc.ConsumeUsage(ctx, promo.ID)
		var promoErr *utils.PromoInvalidError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, utils.PromoLimitExceeded, promoErr.Reason)
		assert.Equal(t, int64(2), promo.CurrentUsage)
	})

	t.Run("unlimited promo never caps", func(t *testing.T) {
		t.Parallel()

		promo := activePromo("FOREVER", db_models.PromoFlat, 50)
		repo := newFakePromoRepo(promo)
		svc := services.NewPromoService(repo, catalog)

		for i := 0; i < 10; i++ {
			require.NoError(t, svc.ConsumeUsage(ctx, promo.ID))
		}
		assert.Equal(t, int64(10), promo.CurrentUsage)
	})
}

func TestPromoService_CreatePromo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakePromoRepo()
	svc := services.NewPromoService(repo, services.DefaultPlanCatalog())

	promo := activePromo(" welcome10 ", db_models.PromoPercentage, 10)
	require.NoError(t, svc.CreatePromo(ctx, promo))
	assert.Equal(t, "WELCOME10", promo.Code)

	dup := activePromo("WELCOME10", db_models.PromoPercentage, 10)
	assert.ErrorIs(t, svc.CreatePromo(ctx, dup), utils.ErrDuplicateCode)
}
