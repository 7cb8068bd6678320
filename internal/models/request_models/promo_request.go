package request_models

type CreatePromoRequest struct {
	Code            string `json:"code" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=flat percentage"`
	Value           int64  `json:"value" binding:"required,gt=0"`
	ApplicablePlans string `json:"applicable_plans"`
	ValidFrom       int64  `json:"valid_from" binding:"required"`
	ValidTo         int64  `json:"valid_to" binding:"required"`
	UsageLimit      *int64 `json:"usage_limit"`
}

type CreatePartnerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	CommissionRate int64  `json:"commission_rate"`
}
