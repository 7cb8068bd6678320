package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// AcademicsController serves the roster endpoints: classes, students and
// teachers. Creation routes sit behind the plan guard, which enforces the
// expiry gate and the countable limits before the handler runs.
type AcademicsController struct {
	classService   services.ClassServiceInterface
	studentService services.StudentServiceInterface
	teacherService services.TeacherServiceInterface
}

func NewAcademicsController(
	classService services.ClassServiceInterface,
	studentService services.StudentServiceInterface,
	teacherService services.TeacherServiceInterface,
) *AcademicsController {
	return &AcademicsController{
		classService:   classService,
		studentService: studentService,
		teacherService: teacherService,
	}
}

func tenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("school_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Missing tenant context")
		return uuid.Nil, false
	}
	return id, true
}

// CreateClass godoc
// @Summary Create a class
// @Tags Academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateClassRequest true "Class payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /classes [post]
func (a *AcademicsController) CreateClass(c *gin.Context) {
	var req request_models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	class, err := a.classService.CreateClass(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, class, "Class created successfully")
}

// ListClasses godoc
// @Summary List classes
// @Tags Academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /classes [get]
func (a *AcademicsController) ListClasses(c *gin.Context) {
	classes, err := a.classService.ListClasses(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, classes, "Classes retrieved successfully")
}

// DeleteClass godoc
// @Summary Delete a class
// @Tags Academics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} utils.APIResponse
// @Router /classes/{id} [delete]
func (a *AcademicsController) DeleteClass(c *gin.Context) {
	if err := a.classService.DeleteClass(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Class deleted successfully")
}

// CreateStudent godoc
// @Summary Admit a student
// @Tags Academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateStudentRequest true "Student payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /students [post]
func (a *AcademicsController) CreateStudent(c *gin.Context) {
	var req request_models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	student, err := a.studentService.CreateStudent(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, student, "Student admitted successfully")
}

// ListStudents godoc
// @Summary List students
// @Tags Academics
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /students [get]
func (a *AcademicsController) ListStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	students, err := a.studentService.ListStudents(c.Request.Context(), c.GetString("school_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, students, "Students retrieved successfully")
}

// DeleteStudent godoc
// @Summary Remove a student
// @Tags Academics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} utils.APIResponse
// @Router /students/{id} [delete]
func (a *AcademicsController) DeleteStudent(c *gin.Context) {
	if err := a.studentService.DeleteStudent(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Student removed successfully")
}

// CreateTeacher godoc
// @Summary Add a teacher
// @Tags Academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateTeacherRequest true "Teacher payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /teachers [post]
func (a *AcademicsController) CreateTeacher(c *gin.Context) {
	var req request_models.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, ok := tenantID(c)
	if !ok {
		return
	}

	teacher, err := a.teacherService.CreateTeacher(c.Request.Context(), schoolID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, teacher, "Teacher added successfully")
}

// ListTeachers godoc
// @Summary List teachers
// @Tags Academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /teachers [get]
func (a *AcademicsController) ListTeachers(c *gin.Context) {
	teachers, err := a.teacherService.ListTeachers(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, teachers, "Teachers retrieved successfully")
}

// DeleteTeacher godoc
// @Summary Remove a teacher
// @Tags Academics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} utils.APIResponse
// @Router /teachers/{id} [delete]
func (a *AcademicsController) DeleteTeacher(c *gin.Context) {
	if err := a.teacherService.DeleteTeacher(c.Request.Context(), c.GetString("school_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Teacher removed successfully")
}
