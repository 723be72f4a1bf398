package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/roster/internal/app/models/dto"
	"github.com/campushq/roster/internal/app/services"
	"github.com/campushq/roster/internal/middleware"
)

// StudentController handles student record operations.
type StudentController struct {
	rosterService services.RosterService
	logger        zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(rosterService services.RosterService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		rosterService: rosterService,
		logger:        logger,
	}
}

// AddStudent creates a student record from the multipart add-contact form.
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var form dto.AddStudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The identity document is optional; a record without one is valid.
	idCard, err := ctx.FormFile("idCard")
	if err != nil && err != http.ErrMissingFile {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid idCard file part")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staffID := ctx.GetInt64(middleware.StaffIDKey)

	if _, err := c.rosterService.AddStudent(ctx.Request.Context(), &form, idCard, staffID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contact added successfully"})
}

// ListStudents returns all records sorted by CGPA descending.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// UpdateStudent replaces the editable fields of a record.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := c.rosterService.UpdateStudent(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contact updated successfully"})
}

// DeleteStudent removes a record.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contact deleted successfully"})
}
