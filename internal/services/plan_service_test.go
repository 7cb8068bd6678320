package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

func TestPlanService_ListPlans(t *testing.T) {
	t.Parallel()

	catalog := services.DefaultPlanCatalog()
	svc := services.NewPlanService(catalog, newFakeStore(), &fakeStats{}, services.NewEntitlementService(catalog, &fakeStats{}))

	plans := svc.ListPlans()
	require.Len(t, plans, 4)
	assert.Equal(t, "trial", plans[0].ID)
	assert.Equal(t, int64(1999), plans[3].Price)
}

func TestPlanService_GetSubscriptionStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := services.DefaultPlanCatalog()

	t.Run("active subscription with usage", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		expires := time.Now().AddDate(0, 0, 200).Unix()
		school := &db_models.School{Name: "S", PlanType: "basic", PlanExpiresAt: &expires}
		store.addSchool(school)

		stats := &fakeStats{students: 120, classes: 3}
		svc := services.NewPlanService(catalog, store, stats, services.NewEntitlementService(catalog, stats))

		status, err := svc.GetSubscriptionStatus(ctx, school.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "basic", status.PlanType)
		assert.True(t, status.Active)
		assert.Equal(t, int64(120), status.Students.Used)
		assert.Equal(t, int64(200), status.Students.Limit)
		assert.Equal(t, int64(3), status.Classes.Used)
		assert.Equal(t, int64(8), status.Classes.Limit)
		assert.NotEmpty(t, status.ExpiresAt)
	})

	t.Run("expired subscription reports inactive", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		expires := time.Now().Add(-time.Hour).Unix()
		school := &db_models.School{Name: "S", PlanType: "basic", PlanExpiresAt: &expires}
		store.addSchool(school)

		stats := &fakeStats{}
		svc := services.NewPlanService(catalog, store, stats, services.NewEntitlementService(catalog, stats))

		status, err := svc.GetSubscriptionStatus(ctx, school.ID.String())
		require.NoError(t, err)
		assert.False(t, status.Active)
	})

	t.Run("unknown school", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		stats := &fakeStats{}
		svc := services.NewPlanService(catalog, store, stats, services.NewEntitlementService(catalog, stats))

		_, err := svc.GetSubscriptionStatus(ctx, "b0b4bb6e-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, utils.ErrSchoolNotFound)
	})
}
