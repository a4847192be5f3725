package register

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/pkg/response"
)

type RegisterHandler struct {
	service *RegisterService
}

// handle 注册
// @Summary 注册账号
// @Description 创建未验证账号并发送邮箱验证码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册请求"
// @Success 201 {object} response.Response "注册成功"
// @Router /auth/signup [post]
func (h *RegisterHandler) handle(c *gin.Context) {
	// 解析参数
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	// 调用注册服务
	result, err := h.service.Register(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, result)
}
