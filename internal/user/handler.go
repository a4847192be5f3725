package user

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/pkg/response"
)

type UserHandler struct {
	service *UserService
}

// handleGetAll 查询全部用户
// @Summary 查询全部用户
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /user/users [get]
func (h *UserHandler) handleGetAll(c *gin.Context) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, users)
}

// handleGet 按ID查询用户
// @Summary 查询单个用户
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /user/user/{id} [get]
func (h *UserHandler) handleGet(c *gin.Context) {
	info, err := h.service.GetUser(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, info)
}

// handleUpdate 更新用户, 仅限本人
func (h *UserHandler) handleUpdate(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	info, err := h.service.UpdateUser(c.Param("id"), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, info)
}

// handleDelete 删除用户, 仅限管理员
func (h *UserHandler) handleDelete(c *gin.Context) {
	if err := h.service.DeleteUser(c.Param("id")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "用户已删除"})
}
