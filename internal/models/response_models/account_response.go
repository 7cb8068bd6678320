package response_models

type LoginResponse struct {
	Token    string `json:"token"`
	SchoolID string `json:"school_id"`
	Role     string `json:"role"`
	PlanType string `json:"plan_type"`
}
