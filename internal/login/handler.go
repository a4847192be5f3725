package login

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/pkg/response"
)

type LoginHandler struct {
	service *LoginService
}

// handle 登录
// @Summary 邮箱密码登录
// @Description 校验凭证并返回访问令牌与用户摘要
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求"
// @Success 200 {object} response.Response "登录成功"
// @Router /auth/login [post]
func (h *LoginHandler) handle(c *gin.Context) {
	// 解析参数
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	result, err := h.service.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}
