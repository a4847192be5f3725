package course

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/pkg/response"
)

type CourseHandler struct {
	service *CourseService
}

// handleGetAll 查询全部课程
func (h *CourseHandler) handleGetAll(c *gin.Context) {
	courses, err := h.service.GetAllCourses()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, courses)
}

// handleGet 按ID查询课程
func (h *CourseHandler) handleGet(c *gin.Context) {
	course, err := h.service.GetCourse(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, course)
}

// handleCreate 创建课程, 仅限管理员
func (h *CourseHandler) handleCreate(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	course, err := h.service.CreateCourse(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, course)
}

// handleUpdate 更新课程, 仅限管理员
func (h *CourseHandler) handleUpdate(c *gin.Context) {
	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	course, err := h.service.UpdateCourse(c.Param("id"), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, course)
}

// handleDelete 删除课程, 仅限管理员
func (h *CourseHandler) handleDelete(c *gin.Context) {
	if err := h.service.DeleteCourse(c.Param("id")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "课程已删除"})
}
