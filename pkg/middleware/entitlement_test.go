package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/middleware"
	"schoolhub/pkg/utils"
)

type fakeSchoolRepo struct {
	school *db_models.School
}

func (f *fakeSchoolRepo) Insert(ctx context.Context, school *db_models.School) error { return nil }

func (f *fakeSchoolRepo) FindById(ctx context.Context, id string) (*db_models.School, error) {
	if f.school != nil && f.school.ID.String() == id {
		return f.school, nil
	}
	return nil, nil
}

func (f *fakeSchoolRepo) FindByEmail(ctx context.Context, email string) (*db_models.School, error) {
	return nil, nil
}

func (f *fakeSchoolRepo) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

type fixedCounts struct {
	classes  int64
	students int64
	teachers int64
}

func (f fixedCounts) CountClasses(ctx context.Context, schoolID string) (int64, error) {
	return f.classes, nil
}

func (f fixedCounts) CountStudents(ctx context.Context, schoolID string) (int64, error) {
	return f.students, nil
}

func (f fixedCounts) CountTeachers(ctx context.Context, schoolID string) (int64, error) {
	return f.teachers, nil
}

func newGuardRouter(school *db_models.School, counts fixedCounts, register func(*gin.RouterGroup, *middleware.PlanGuard)) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &fakeSchoolRepo{school: school}
	entitlements := services.NewEntitlementService(services.DefaultPlanCatalog(), counts)
	guard := middleware.NewPlanGuard(repo, entitlements)

	router := gin.New()
	authed := router.Group("/", func(c *gin.Context) {
		c.Set("school_id", school.ID.String())
		c.Next()
	})
	register(authed, guard)
	return router
}

func activeSchool(plan string) *db_models.School {
	expires := time.Now().AddDate(0, 0, 30).Unix()
	s := &db_models.School{
		Name:          "Guarded School",
		PlanType:      plan,
		PlanExpiresAt: &expires,
	}
	s.ID = uuid.New()
	return s
}

func doPost(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestPlanGuard_RequireResource(t *testing.T) {
	t.Parallel()

	ok := func(c *gin.Context) { utils.RespondSuccess(c, nil, "created") }

	t.Run("under limit passes through", func(t *testing.T) {
		t.Parallel()

		router := newGuardRouter(activeSchool("basic"), fixedCounts{students: 150}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/students", guard.RequireResource(services.ResourceStudents), ok)
		})

		rec := doPost(router, "/students")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("at limit is denied with LIMIT_REACHED", func(t *testing.T) {
		t.Parallel()

		router := newGuardRouter(activeSchool("basic"), fixedCounts{students: 200}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/students", guard.RequireResource(services.ResourceStudents), ok)
		})

		rec := doPost(router, "/students")
		assert.Equal(t, http.StatusForbidden, rec.Code)

		resp := decodeEnvelope(t, rec)
		assert.Equal(t, utils.CodeLimitReached, resp.ErrorCode)
		assert.Contains(t, resp.Message, "Upgrade")
	})

	t.Run("expired plan beats an under-limit count", func(t *testing.T) {
		t.Parallel()

		school := activeSchool("basic")
		expired := time.Now().Add(-time.Hour).Unix()
		school.PlanExpiresAt = &expired

		router := newGuardRouter(school, fixedCounts{students: 0}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/students", guard.RequireResource(services.ResourceStudents), ok)
		})

		rec := doPost(router, "/students")
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Equal(t, utils.CodePlanExpired, decodeEnvelope(t, rec).ErrorCode)
	})

	t.Run("unlimited plan always passes", func(t *testing.T) {
		t.Parallel()

		router := newGuardRouter(activeSchool("premium"), fixedCounts{students: 100000}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/students", guard.RequireResource(services.ResourceStudents), ok)
		})

		rec := doPost(router, "/students")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPlanGuard_RequireFeature(t *testing.T) {
	t.Parallel()

	ok := func(c *gin.Context) { utils.RespondSuccess(c, nil, "created") }

	t.Run("locked feature is denied with FEATURE_LOCKED", func(t *testing.T) {
		t.Parallel()

		router := newGuardRouter(activeSchool("basic"), fixedCounts{}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/vehicles", guard.RequireFeature(services.FeatureVehicles), ok)
		})

		rec := doPost(router, "/vehicles")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, utils.CodeFeatureLocked, decodeEnvelope(t, rec).ErrorCode)
	})

	t.Run("upgraded plan unlocks the feature", func(t *testing.T) {
		t.Parallel()

		router := newGuardRouter(activeSchool("standard"), fixedCounts{}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/vehicles", guard.RequireFeature(services.FeatureVehicles), ok)
		})

		rec := doPost(router, "/vehicles")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("expired plan is denied before the feature check", func(t *testing.T) {
		t.Parallel()

		school := activeSchool("standard")
		expired := time.Now().Add(-time.Hour).Unix()
		school.PlanExpiresAt = &expired

		router := newGuardRouter(school, fixedCounts{}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/vehicles", guard.RequireFeature(services.FeatureVehicles), ok)
		})

		rec := doPost(router, "/vehicles")
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})
}

func TestPlanGuard_RequireActive(t *testing.T) {
	t.Parallel()

	ok := func(c *gin.Context) { utils.RespondSuccess(c, nil, "updated") }

	t.Run("active tenant passes", func(t *testing.T) {
		t.Parallel()

		router := newGuardRouter(activeSchool("basic"), fixedCounts{}, func(g *gin.RouterGroup, guard *middleware.PlanGuard) {
			g.POST("/school", guard.RequireActive(), ok)
		})

		assert.Equal(t, http.StatusOK, doPost(router, "/school").Code)
	})

	t.Run("unknown tenant is unauthorized", func(t *testing.T) {
		t.Parallel()

		school := activeSchool("basic")
		repo := &fakeSchoolRepo{} // no school stored
		entitlements := services.NewEntitlementService(services.DefaultPlanCatalog(), fixedCounts{})
		guard := middleware.NewPlanGuard(repo, entitlements)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/school", func(c *gin.Context) {
			c.Set("school_id", school.ID.String())
			c.Next()
		}, guard.RequireActive(), ok)

		assert.Equal(t, http.StatusUnauthorized, doPost(router, "/school").Code)
	})
}
