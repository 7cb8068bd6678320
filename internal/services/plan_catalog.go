package services

import (
	"slices"
	"sort"
	"strings"

	"schoolhub/pkg/utils"
)

// Unlimited is the sentinel for a no-cap limit. Entitlement checks on an
// unlimited resource never issue a count query.
const Unlimited int64 = -1

// TrialDays is the window granted to legacy trial tenants with no explicit
// expiry stored, anchored on account creation.
const TrialDays = 14

// Plan feature names.
const (
	FeatureNoticesBasic  = "notices_basic"
	FeatureFeeManual     = "fee_manual"
	FeatureVehicles      = "vehicles"
	FeatureHomework      = "homework"
	FeatureEvents        = "events"
	FeatureBackupMonthly = "backup_monthly"
)

type PlanDefinition struct {
	ID           string
	Name         string
	Price        int64 // whole rupees; 0 = not billable
	Currency     string
	MaxStudents  int64
	MaxClasses   int64
	DurationDays int
	Features     []string
}

func (p PlanDefinition) HasFeature(name string) bool {
	return slices.Contains(p.Features, name)
}

// PlanCatalog is the static plan table, loaded at startup and immutable.
type PlanCatalog struct {
	plans map[string]PlanDefinition
}

// NewPlanCatalog copies the given plans into an immutable lookup table.
// Panics if no plans are provided so the service always has a valid catalog.
func NewPlanCatalog(plans ...PlanDefinition) *PlanCatalog {
	if len(plans) == 0 {
		panic("at least one plan is required")
	}

	copied := make(map[string]PlanDefinition, len(plans))
	for _, plan := range plans {
		plan.Features = slices.Clone(plan.Features)
		copied[strings.ToLower(plan.ID)] = plan
	}

	return &PlanCatalog{plans: copied}
}

// Get looks a plan up by id, case-insensitively.
func (c *PlanCatalog) Get(planID string) (PlanDefinition, error) {
	plan, ok := c.plans[strings.ToLower(planID)]
	if !ok {
		return PlanDefinition{}, utils.ErrPlanNotFound
	}
	plan.Features = slices.Clone(plan.Features)
	return plan, nil
}

// All returns the catalog sorted by price ascending.
func (c *PlanCatalog) All() []PlanDefinition {
	plans := make([]PlanDefinition, 0, len(c.plans))
	for _, plan := range c.plans {
		plan.Features = slices.Clone(plan.Features)
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Price < plans[j].Price })
	return plans
}

// DefaultPlanCatalog returns the production tiers.
func DefaultPlanCatalog() *PlanCatalog {
	return NewPlanCatalog(
		PlanDefinition{
			ID: "trial", Name: "Trial", Price: 0, Currency: "INR",
			MaxStudents: 50, MaxClasses: 2, DurationDays: TrialDays,
			Features: []string{FeatureNoticesBasic},
		},
		PlanDefinition{
			ID: "basic", Name: "Basic", Price: 499, Currency: "INR",
			MaxStudents: 200, MaxClasses: 8, DurationDays: 365,
			Features: []string{FeatureNoticesBasic, FeatureFeeManual},
		},
		PlanDefinition{
			ID: "standard", Name: "Standard", Price: 999, Currency: "INR",
			MaxStudents: 500, MaxClasses: 15, DurationDays: 365,
			Features: []string{FeatureNoticesBasic, FeatureFeeManual, FeatureVehicles, FeatureHomework},
		},
		PlanDefinition{
			ID: "premium", Name: "Premium", Price: 1999, Currency: "INR",
			MaxStudents: Unlimited, MaxClasses: Unlimited, DurationDays: 365,
			Features: []string{
				FeatureNoticesBasic, FeatureFeeManual, FeatureVehicles,
				FeatureHomework, FeatureEvents, FeatureBackupMonthly,
			},
		},
	)
}
