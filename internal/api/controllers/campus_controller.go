package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// CampusController serves notices, homework, fees, vehicles and events.
// Feature-locked routes (homework, vehicles, events, fees) sit behind the
// plan guard's feature check.
type CampusController struct {
	noticeService   services.NoticeServiceInterface
	homeworkService services.HomeworkServiceInterface
	feeService      services.FeeServiceInterface
	vehicleService  services.VehicleServiceInterface
	eventService    services.EventServiceInterface
}

func NewCampusController(
	noticeService services.NoticeServiceInterface,
	homeworkService services.HomeworkServiceInterface,
	feeService services.FeeServiceInterface,
	vehicleService services.VehicleServiceInterface,
	eventService services.EventServiceInterface,
) *CampusController {
	return &CampusController{
		noticeService:   noticeService,
		homeworkService: homeworkService,
		feeService:      feeService,
		vehicleService:  vehicleService,
		eventService:    eventService,
	}
}

// PublishNotice godoc
// @Summary Publish a notice
// @Tags Campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateNoticeRequest true "Notice payload"
// @Success 200 {object} utils.APIResponse
// @Router /notices [post]
func (cc *CampusController) PublishNotice(c *gin.Context) {
	var req request_models.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	notice, err := cc.noticeService.PublishNotice(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notice, "Notice published successfully")
}

// ListNotices godoc
// @Summary List notices
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /notices [get]
func (cc *CampusController) ListNotices(c *gin.Context) {
	notices, err := cc.noticeService.ListNotices(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notices, "Notices retrieved successfully")
}

// DeleteNotice godoc
// @Summary Delete a notice
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 200 {object} utils.APIResponse
// @Router /notices/{id} [delete]
func (cc *CampusController) DeleteNotice(c *gin.Context) {
	if err := cc.noticeService.DeleteNotice(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notice deleted successfully")
}

// AssignHomework godoc
// @Summary Assign homework
// @Tags Campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateHomeworkRequest true "Homework payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /homework [post]
func (cc *CampusController) AssignHomework(c *gin.Context) {
	var req request_models.CreateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	hw, err := cc.homeworkService.AssignHomework(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hw, "Homework assigned successfully")
}

// ListHomework godoc
// @Summary List homework
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /homework [get]
func (cc *CampusController) ListHomework(c *gin.Context) {
	homework, err := cc.homeworkService.ListHomework(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, homework, "Homework retrieved successfully")
}

// DeleteHomework godoc
// @Summary Delete homework
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework ID"
// @Success 200 {object} utils.APIResponse
// @Router /homework/{id} [delete]
func (cc *CampusController) DeleteHomework(c *gin.Context) {
	if err := cc.homeworkService.DeleteHomework(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Homework deleted successfully")
}

// RecordFee godoc
// @Summary Record a fee entry for a student
// @Tags Campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateFeeRequest true "Fee payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /fees [post]
func (cc *CampusController) RecordFee(c *gin.Context) {
	var req request_models.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	fee, err := cc.feeService.RecordFee(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, fee, "Fee recorded successfully")
}

// ListFees godoc
// @Summary List a student's fee entries
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID"
// @Success 200 {object} utils.APIResponse
// @Router /fees/student/{student_id} [get]
func (cc *CampusController) ListFees(c *gin.Context) {
	fees, err := cc.feeService.ListFeesByStudent(c.Request.Context(), c.GetString("school_id"), c.Param("student_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, fees, "Fees retrieved successfully")
}

// CollectFee godoc
// @Summary Mark a fee entry as paid
// @Tags Campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee ID"
// @Param request body request_models.CollectFeeRequest true "Collection payload"
// @Success 200 {object} utils.APIResponse
// @Router /fees/{id}/collect [post]
func (cc *CampusController) CollectFee(c *gin.Context) {
	var req request_models.CollectFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.feeService.CollectFee(c.Request.Context(), c.GetString("school_id"), c.Param("id"), req.Mode); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Fee collected successfully")
}

// AddVehicle godoc
// @Summary Add a transport vehicle
// @Tags Campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateVehicleRequest true "Vehicle payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /vehicles [post]
func (cc *CampusController) AddVehicle(c *gin.Context) {
	var req request_models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	vehicle, err := cc.vehicleService.AddVehicle(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle added successfully")
}

// ListVehicles godoc
// @Summary List transport vehicles
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /vehicles [get]
func (cc *CampusController) ListVehicles(c *gin.Context) {
	vehicles, err := cc.vehicleService.ListVehicles(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicles, "Vehicles retrieved successfully")
}

// DeleteVehicle godoc
// @Summary Remove a transport vehicle
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} utils.APIResponse
// @Router /vehicles/{id} [delete]
func (cc *CampusController) DeleteVehicle(c *gin.Context) {
	if err := cc.vehicleService.DeleteVehicle(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vehicle removed successfully")
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Campus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /events [post]
func (cc *CampusController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	event, err := cc.eventService.CreateEvent(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created successfully")
}

// ListEvents godoc
// @Summary List events
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /events [get]
func (cc *CampusController) ListEvents(c *gin.Context) {
	events, err := cc.eventService.ListEvents(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events retrieved successfully")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Campus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{id} [delete]
func (cc *CampusController) DeleteEvent(c *gin.Context) {
	if err := cc.eventService.DeleteEvent(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
