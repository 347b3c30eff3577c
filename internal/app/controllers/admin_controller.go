package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/app/services"
	"github.com/gradpath/intake/internal/middleware"
	"github.com/gradpath/intake/internal/pkg/apperrors"
)

// AdminController handles the administrative student views.
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// ListStudents handles GET /api/admin/students. The response body is the
// bare array of student summaries.
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.adminService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent handles GET /api/admin/student/:id
func (c *AdminController) GetStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewError("Student not found"))
		return
	}

	record, err := c.adminService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// AddStudent handles POST /api/admin/student. A duplicate email here is
// a caller mistake rather than a signup conflict, so it answers 400.
func (c *AdminController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Name and Email are required"))
		return
	}

	id, err := c.adminService.AddStudent(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusBadRequest, dto.NewError("Email already exists"))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddStudentResponse{
		Message:   "Student added successfully",
		StudentID: id,
	})
}
