package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	ErrorCode string      `json:"error_code,omitempty"`
	Message   string      `json:"message,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// Machine-readable denial codes surfaced to the frontend.
const (
	CodePlanExpired   = "PLAN_EXPIRED"
	CodeLimitReached  = "LIMIT_REACHED"
	CodeFeatureLocked = "FEATURE_LOCKED"
	CodeInvalidPromo  = "INVALID_PROMO"
	CodeGatewayError  = "GATEWAY_ERROR"
)

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func respondDenial(c *gin.Context, httpCode int, errorCode, message string) {
	c.JSON(httpCode, APIResponse{
		Status:    "error",
		Code:      httpCode,
		ErrorCode: errorCode,
		Message:   message,
		TraceID:   c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors onto the response envelope. Plan
// denials keep their upsell message so the frontend can show what upgrading
// would unlock.
func HandleServiceError(c *gin.Context, err error) {
	var limitErr *LimitReachedError
	var featureErr *FeatureLockedError
	var promoErr *PromoInvalidError
	var gatewayErr *GatewayError

	switch {
	case errors.Is(err, ErrPlanExpired):
		respondDenial(c, http.StatusPaymentRequired, CodePlanExpired,
			"Your plan has expired. Renew or upgrade to continue.")
	case errors.As(err, &limitErr):
		respondDenial(c, http.StatusForbidden, CodeLimitReached,
			limitErr.Error()+". Upgrade your plan to raise this limit.")
	case errors.As(err, &featureErr):
		respondDenial(c, http.StatusForbidden, CodeFeatureLocked,
			featureErr.Error()+". Upgrade your plan to unlock it.")
	case errors.As(err, &promoErr):
		respondDenial(c, http.StatusBadRequest, CodeInvalidPromo, "Promo code is not valid")
	case errors.As(err, &gatewayErr):
		log.Printf("Gateway error: %v", err)
		respondDenial(c, http.StatusBadGateway, CodeGatewayError, "Payment gateway unavailable, try again")
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, ErrPlanNotBillable):
		RespondError(c, http.StatusBadRequest, "Unknown or non-purchasable plan")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrSchoolNotFound):
		RespondError(c, http.StatusNotFound, "School not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrDuplicateCode):
		RespondError(c, http.StatusConflict, "Code already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
