package services

import (
	"context"
	"time"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

// ResourceKind is the tagged dispatch for countable plan limits.
type ResourceKind int

const (
	ResourceClasses ResourceKind = iota
	ResourceStudents
	ResourceTeachers
)

func (r ResourceKind) String() string {
	switch r {
	case ResourceClasses:
		return "classes"
	case ResourceStudents:
		return "students"
	case ResourceTeachers:
		return "teachers"
	default:
		return "unknown"
	}
}

type EntitlementServiceInterface interface {
	// EnsureActive is the expiry gate. It must run before any resource or
	// feature check: an expired tenant is rejected even when under limit.
	EnsureActive(school *db_models.School, now time.Time) error
	CheckResource(ctx context.Context, school *db_models.School, kind ResourceKind) error
	CheckFeature(school *db_models.School, feature string) error
}

type EntitlementService struct {
	catalog *PlanCatalog
	stats   repositories.ResourceStatsRepository
}

func NewEntitlementService(catalog *PlanCatalog, stats repositories.ResourceStatsRepository) EntitlementServiceInterface {
	return &EntitlementService{
		catalog: catalog,
		stats:   stats,
	}
}

func (e *EntitlementService) EnsureActive(school *db_models.School, now time.Time) error {
	if school.PlanExpiresAt != nil {
		if now.Unix() <= *school.PlanExpiresAt {
			return nil
		}
		return utils.ErrPlanExpired
	}

	// Legacy trial rows carry no explicit expiry; the trial window is
	// anchored on account creation and closes at the 14-day mark exactly,
	// unlike stored expiries which stay valid through their last second.
	if school.PlanType == "trial" {
		expiry := time.Unix(school.CreatedAt, 0).AddDate(0, 0, TrialDays)
		if now.Before(expiry) {
			return nil
		}
	}

	return utils.ErrPlanExpired
}

func (e *EntitlementService) CheckResource(ctx context.Context, school *db_models.School, kind ResourceKind) error {
	plan, err := e.catalog.Get(school.PlanType)
	if err != nil {
		return err
	}

	var limit int64
	var count int64

	switch kind {
	case ResourceClasses:
		limit = plan.MaxClasses
	case ResourceStudents:
		limit = plan.MaxStudents
	case ResourceTeachers:
		// Teachers follow the student cap family; premium is uncapped.
		limit = plan.MaxStudents
	default:
		return utils.ErrDatabaseError
	}

	if limit == Unlimited {
		return nil
	}

	switch kind {
	case ResourceClasses:
		count, err = e.stats.CountClasses(ctx, school.ID.String())
	case ResourceStudents:
		count, err = e.stats.CountStudents(ctx, school.ID.String())
	case ResourceTeachers:
		count, err = e.stats.CountTeachers(ctx, school.ID.String())
	}
	if err != nil {
		return utils.ErrDatabaseError
	}

	if count >= limit {
		return &utils.LimitReachedError{
			Resource: kind.String(),
			Limit:    limit,
			Plan:     plan.Name,
		}
	}

	return nil
}

func (e *EntitlementService) CheckFeature(school *db_models.School, feature string) error {
	plan, err := e.catalog.Get(school.PlanType)
	if err != nil {
		return err
	}

	if !plan.HasFeature(feature) {
		return &utils.FeatureLockedError{
			Feature: feature,
			Plan:    plan.Name,
		}
	}

	return nil
}
