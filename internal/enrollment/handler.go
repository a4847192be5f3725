package enrollment

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/internal/middleware"
	"terminal-terrace/enroll-service/pkg/response"
)

type EnrollmentHandler struct {
	service *EnrollmentService
}

// handleGetAll 查询全部选课记录
// @Summary 查询全部选课记录
// @Tags 选课
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /enroll [get]
func (h *EnrollmentHandler) handleGetAll(c *gin.Context) {
	enrollments, err := h.service.GetAllEnrollments()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, enrollments)
}

// handleGet 按ID查询选课记录
func (h *EnrollmentHandler) handleGet(c *gin.Context) {
	enrollment, err := h.service.GetEnrollment(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, enrollment)
}

// handleCreate 创建选课记录
func (h *EnrollmentHandler) handleCreate(c *gin.Context) {
	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	enrollment, err := h.service.CreateEnrollment(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, enrollment)
}

// handleUpdate 更新选课状态, 归属检查在服务层
func (h *EnrollmentHandler) handleUpdate(c *gin.Context) {
	var req UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidToken),
			response.WithErrorMessage("未提供认证令牌"),
		))
		return
	}

	enrollment, err := h.service.UpdateEnrollment(c.Param("id"), req, actor)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, enrollment)
}

// handleDelete 删除选课记录, 归属检查在服务层
func (h *EnrollmentHandler) handleDelete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidToken),
			response.WithErrorMessage("未提供认证令牌"),
		))
		return
	}

	if err := h.service.DeleteEnrollment(c.Param("id"), actor); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "选课记录已删除"})
}

// handleRecordGrade 录入成绩, 仅限管理员
func (h *EnrollmentHandler) handleRecordGrade(c *gin.Context) {
	var req RecordGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	enrollment, err := h.service.RecordGrade(c.Param("id"), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, enrollment)
}
