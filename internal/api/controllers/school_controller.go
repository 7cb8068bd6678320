package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

type SchoolController struct {
	schoolService services.SchoolServiceInterface
}

func NewSchoolController(schoolService services.SchoolServiceInterface) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// GetProfile godoc
// @Summary Get school profile
// @Tags Schools
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /school [get]
func (s *SchoolController) GetProfile(c *gin.Context) {
	school, err := s.schoolService.GetProfile(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, school, "Profile retrieved successfully")
}

// UpdateProfile godoc
// @Summary Update school profile
// @Description Updates contact fields. Plan fields cannot be edited here.
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /school [put]
func (s *SchoolController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateSchoolProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	if err := s.schoolService.UpdateProfile(c.Request.Context(), c.GetString("school_id"), fields); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}
