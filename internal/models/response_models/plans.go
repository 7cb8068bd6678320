package response_models

type PlanInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	Currency     string   `json:"currency"`
	MaxStudents  int64    `json:"max_students"` // -1 = unlimited
	MaxClasses   int64    `json:"max_classes"`
	DurationDays int      `json:"duration_days"`
	Features     []string `json:"features"`
}

type ResourceUsage struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"` // -1 = unlimited
}

// SubscriptionStatus powers the dashboard plan widget.
type SubscriptionStatus struct {
	PlanType  string        `json:"plan_type"`
	PlanName  string        `json:"plan_name"`
	Active    bool          `json:"active"`
	ExpiresAt string        `json:"expires_at,omitempty"` // RFC3339, IST
	Students  ResourceUsage `json:"students"`
	Classes   ResourceUsage `json:"classes"`
	Features  []string      `json:"features"`
}
