package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

func TestPlanCatalog_Get(t *testing.T) {
	t.Parallel()

	catalog := services.DefaultPlanCatalog()

	t.Run("known plan", func(t *testing.T) {
		t.Parallel()

		plan, err := catalog.Get("basic")
		require.NoError(t, err)
		assert.Equal(t, "basic", plan.ID)
		assert.Equal(t, int64(499), plan.Price)
		assert.Equal(t, int64(200), plan.MaxStudents)
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		t.Parallel()

		plan, err := catalog.Get("PREMIUM")
		require.NoError(t, err)
		assert.Equal(t, "premium", plan.ID)
	})

	t.Run("unknown plan", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Get("enterprise")
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("returned plan is a copy", func(t *testing.T) {
		t.Parallel()

		plan, err := catalog.Get("standard")
		require.NoError(t, err)
		plan.Price = 1
		plan.Features[0] = "mutated"

		again, err := catalog.Get("standard")
		require.NoError(t, err)
		assert.Equal(t, int64(999), again.Price)
		assert.NotEqual(t, "mutated", again.Features[0])
	})
}

func TestPlanCatalog_All(t *testing.T) {
	t.Parallel()

	plans := services.DefaultPlanCatalog().All()
	require.Len(t, plans, 4)

	// Sorted by price ascending, trial first.
	assert.Equal(t, "trial", plans[0].ID)
	assert.Equal(t, "premium", plans[3].ID)
	for i := 1; i < len(plans); i++ {
		assert.GreaterOrEqual(t, plans[i].Price, plans[i-1].Price)
	}
}

func TestDefaultPlanCatalog_Tiers(t *testing.T) {
	t.Parallel()

	catalog := services.DefaultPlanCatalog()

	trial, err := catalog.Get("trial")
	require.NoError(t, err)
	assert.Zero(t, trial.Price)
	assert.Equal(t, int64(50), trial.MaxStudents)
	assert.Equal(t, int64(2), trial.MaxClasses)
	assert.Equal(t, 14, trial.DurationDays)

	premium, err := catalog.Get("premium")
	require.NoError(t, err)
	assert.Equal(t, services.Unlimited, premium.MaxStudents)
	assert.Equal(t, services.Unlimited, premium.MaxClasses)
	assert.True(t, premium.HasFeature(services.FeatureBackupMonthly))

	basic, err := catalog.Get("basic")
	require.NoError(t, err)
	assert.True(t, basic.HasFeature(services.FeatureNoticesBasic))
	assert.True(t, basic.HasFeature(services.FeatureFeeManual))
	assert.False(t, basic.HasFeature(services.FeatureVehicles))
}
