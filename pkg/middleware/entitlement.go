package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// PlanGuard gates write endpoints on the tenant's subscription. Every guard
// runs the expiry check first, so an expired school is rejected even when it
// is under every limit and the feature is in its plan.
type PlanGuard struct {
	schoolRepo   repositories.SchoolRepository
	entitlements services.EntitlementServiceInterface
}

func NewPlanGuard(schoolRepo repositories.SchoolRepository, entitlements services.EntitlementServiceInterface) *PlanGuard {
	return &PlanGuard{
		schoolRepo:   schoolRepo,
		entitlements: entitlements,
	}
}

// school resolves the tenant from the JWT claim set by JWTAuthMiddleware.
// On failure it writes the response and aborts; callers just return.
func (g *PlanGuard) school(c *gin.Context) (*db_models.School, bool) {
	schoolID := c.GetString("school_id")
	if schoolID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing tenant context")
		c.Abort()
		return nil, false
	}

	school, err := g.schoolRepo.FindById(c.Request.Context(), schoolID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
		return nil, false
	}
	if school == nil {
		utils.RespondError(c, http.StatusUnauthorized, "School not found")
		c.Abort()
		return nil, false
	}

	return school, true
}

// RequireResource blocks the request when creating one more row of the given
// kind would exceed the plan limit.
func (g *PlanGuard) RequireResource(kind services.ResourceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		school, ok := g.school(c)
		if !ok {
			return
		}

		if err := g.entitlements.EnsureActive(school, time.Now()); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if err := g.entitlements.CheckResource(c.Request.Context(), school, kind); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireFeature blocks the request when the tenant's plan does not include
// the named feature.
func (g *PlanGuard) RequireFeature(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		school, ok := g.school(c)
		if !ok {
			return
		}

		if err := g.entitlements.EnsureActive(school, time.Now()); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if err := g.entitlements.CheckFeature(school, feature); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireActive only runs the expiry gate, for endpoints that mutate tenant
// data without creating countable rows.
func (g *PlanGuard) RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		school, ok := g.school(c)
		if !ok {
			return
		}

		if err := g.entitlements.EnsureActive(school, time.Now()); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
