package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// fakeStats returns canned counts and records whether a count query ran.
type fakeStats struct {
	classes  int64
	students int64
	teachers int64
	queried  bool
}

func (f *fakeStats) CountClasses(ctx context.Context, schoolID string) (int64, error) {
	f.queried = true
	return f.classes, nil
}

func (f *fakeStats) CountStudents(ctx context.Context, schoolID string) (int64, error) {
	f.queried = true
	return f.students, nil
}

func (f *fakeStats) CountTeachers(ctx context.Context, schoolID string) (int64, error) {
	f.queried = true
	return f.teachers, nil
}

func schoolOnPlan(plan string, expiresAt *int64) *db_models.School {
	s := &db_models.School{
		Name:          "Test School",
		PlanType:      plan,
		PlanExpiresAt: expiresAt,
	}
	s.ID = uuid.New()
	return s
}

func unixPtr(t time.Time) *int64 {
	u := t.Unix()
	return &u
}

func TestEntitlementService_EnsureActive(t *testing.T) {
	t.Parallel()

	svc := services.NewEntitlementService(services.DefaultPlanCatalog(), &fakeStats{})
	now := time.Now()

	t.Run("active subscription", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("basic", unixPtr(now.Add(24*time.Hour)))
		assert.NoError(t, svc.EnsureActive(school, now))
	})

	t.Run("expiry moment itself is still active", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("basic", unixPtr(now))
		assert.NoError(t, svc.EnsureActive(school, now))
	})

	t.Run("one second past expiry is rejected", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("basic", unixPtr(now.Add(-time.Second)))
		assert.ErrorIs(t, svc.EnsureActive(school, now), utils.ErrPlanExpired)
	})

	t.Run("trial with no stored expiry uses creation window", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("trial", nil)
		school.CreatedAt = now.AddDate(0, 0, -7).Unix()
		assert.NoError(t, svc.EnsureActive(school, now))
	})

	t.Run("trial past the creation window is rejected", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("trial", nil)
		school.CreatedAt = now.AddDate(0, 0, -15).Unix()
		assert.ErrorIs(t, svc.EnsureActive(school, now), utils.ErrPlanExpired)
	})

	t.Run("trial window is strict at the 14 day mark", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("trial", nil)
		school.CreatedAt = now.AddDate(0, 0, -14).Unix()
		assert.ErrorIs(t, svc.EnsureActive(school, now), utils.ErrPlanExpired)

		justInside := schoolOnPlan("trial", nil)
		justInside.CreatedAt = now.AddDate(0, 0, -14).Add(time.Second).Unix()
		assert.NoError(t, svc.EnsureActive(justInside, now))
	})

	t.Run("paid plan with no expiry is rejected", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("basic", nil)
		school.CreatedAt = now.Unix()
		assert.ErrorIs(t, svc.EnsureActive(school, now), utils.ErrPlanExpired)
	})
}

func TestEntitlementService_CheckResource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("one below the limit is allowed", func(t *testing.T) {
		t.Parallel()

		svc := services.NewEntitlementService(services.DefaultPlanCatalog(), &fakeStats{students: 199})
		school := schoolOnPlan("basic", nil)
		assert.NoError(t, svc.CheckResource(ctx, school, services.ResourceStudents))
	})

	t.Run("at the limit is denied", func(t *testing.T) {
		t.Parallel()

		svc := services.NewEntitlementService(services.DefaultPlanCatalog(), &fakeStats{students: 200})
		school := schoolOnPlan("basic", nil)

		err := svc.CheckResource(ctx, school, services.ResourceStudents)
		var limitErr *utils.LimitReachedError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, "students", limitErr.Resource)
		assert.Equal(t, int64(200), limitErr.Limit)
	})

	t.Run("class limit", func(t *testing.T) {
		t.Parallel()

		svc := services.NewEntitlementService(services.DefaultPlanCatalog(), &fakeStats{classes: 2})
		school := schoolOnPlan("trial", nil)

		err := svc.CheckResource(ctx, school, services.ResourceClasses)
		var limitErr *utils.LimitReachedError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, "classes", limitErr.Resource)
	})

	t.Run("unlimited plan never counts rows", func(t *testing.T) {
		t.Parallel()

		stats := &fakeStats{students: 1_000_000}
		svc := services.NewEntitlementService(services.DefaultPlanCatalog(), stats)
		school := schoolOnPlan("premium", nil)

		assert.NoError(t, svc.CheckResource(ctx, school, services.ResourceStudents))
		assert.False(t, stats.queried, "unlimited limit should skip the count query")
	})

	t.Run("unknown plan", func(t *testing.T) {
		t.Parallel()

		svc := services.NewEntitlementService(services.DefaultPlanCatalog(), &fakeStats{})
		school := schoolOnPlan("legacy", nil)
		assert.ErrorIs(t, svc.CheckResource(ctx, school, services.ResourceStudents), utils.ErrPlanNotFound)
	})
}

func TestEntitlementService_CheckFeature(t *testing.T) {
	t.Parallel()

	svc := services.NewEntitlementService(services.DefaultPlanCatalog(), &fakeStats{})

	t.Run("included feature", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("standard", nil)
		assert.NoError(t, svc.CheckFeature(school, services.FeatureVehicles))
	})

	t.Run("locked feature", func(t *testing.T) {
		t.Parallel()

		school := schoolOnPlan("basic", nil)

		err := svc.CheckFeature(school, services.FeatureVehicles)
		var lockedErr *utils.FeatureLockedError
		require.ErrorAs(t, err, &lockedErr)
		assert.Equal(t, services.FeatureVehicles, lockedErr.Feature)
		assert.Equal(t, "Basic", lockedErr.Plan)
	})
}
