package services

import (
	"context"
	"time"

	"schoolhub/internal/models/response_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans() []response_models.PlanInfo
	GetSubscriptionStatus(ctx context.Context, schoolID string) (*response_models.SubscriptionStatus, error)
}

type PlanService struct {
	catalog     *PlanCatalog
	schoolRepo  repositories.SchoolRepository
	statsRepo   repositories.ResourceStatsRepository
	entitlement EntitlementServiceInterface
}

func NewPlanService(
	catalog *PlanCatalog,
	schoolRepo repositories.SchoolRepository,
	statsRepo repositories.ResourceStatsRepository,
	entitlement EntitlementServiceInterface,
) PlanServiceInterface {
	return &PlanService{
		catalog:     catalog,
		schoolRepo:  schoolRepo,
		statsRepo:   statsRepo,
		entitlement: entitlement,
	}
}

func (p *PlanService) ListPlans() []response_models.PlanInfo {
	plans := p.catalog.All()
	out := make([]response_models.PlanInfo, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.PlanInfo{
			ID:           plan.ID,
			Name:         plan.Name,
			Price:        plan.Price,
			Currency:     plan.Currency,
			MaxStudents:  plan.MaxStudents,
			MaxClasses:   plan.MaxClasses,
			DurationDays: plan.DurationDays,
			Features:     plan.Features,
		})
	}
	return out
}

func (p *PlanService) GetSubscriptionStatus(ctx context.Context, schoolID string) (*response_models.SubscriptionStatus, error) {
	school, err := p.schoolRepo.FindById(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if school == nil {
		return nil, utils.ErrSchoolNotFound
	}

	plan, err := p.catalog.Get(school.PlanType)
	if err != nil {
		return nil, err
	}

	students, err := p.statsRepo.CountStudents(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	classes, err := p.statsRepo.CountClasses(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	status := &response_models.SubscriptionStatus{
		PlanType: plan.ID,
		PlanName: plan.Name,
		Active:   p.entitlement.EnsureActive(school, time.Now()) == nil,
		Students: response_models.ResourceUsage{Used: students, Limit: plan.MaxStudents},
		Classes:  response_models.ResourceUsage{Used: classes, Limit: plan.MaxClasses},
		Features: plan.Features,
	}
	if school.PlanExpiresAt != nil {
		status.ExpiresAt = utils.FormatRFC3339IST(utils.FromUnixSecondsIST(*school.PlanExpiresAt))
	}

	return status, nil
}
