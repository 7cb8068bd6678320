package utils

import (
	"errors"
	"fmt"
)

var (
	ErrSchoolNotFound     = errors.New("school not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")

	ErrPlanNotFound    = errors.New("plan not found")
	ErrPlanNotBillable = errors.New("plan is not billable")
	ErrPlanExpired     = errors.New("plan expired")

	ErrOrderNotFound = errors.New("order not found")
	ErrDuplicateCode = errors.New("code already exists")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
)

// LimitReachedError is returned when a tenant hits a countable plan limit.
type LimitReachedError struct {
	Resource string
	Limit    int64
	Plan     string
}

func (e *LimitReachedError) Error() string {
	return fmt.Sprintf("%s limit of %d reached on the %s plan", e.Resource, e.Limit, e.Plan)
}

// FeatureLockedError is returned when the tenant's plan does not include a feature.
type FeatureLockedError struct {
	Feature string
	Plan    string
}

func (e *FeatureLockedError) Error() string {
	return fmt.Sprintf("feature %q is not included in the %s plan", e.Feature, e.Plan)
}

// Promo rejection reasons. Distinguished internally, surfaced uniformly.
const (
	PromoNotFound      = "not_found"
	PromoInactive      = "inactive"
	PromoNotStarted    = "not_started"
	PromoExpired       = "expired"
	PromoLimitExceeded = "limit_exceeded"
	PromoNotApplicable = "plan_not_applicable"
)

type PromoInvalidError struct {
	Reason string
}

func (e *PromoInvalidError) Error() string {
	return fmt.Sprintf("promo code invalid: %s", e.Reason)
}

// GatewayError wraps a transient payment-gateway failure.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
