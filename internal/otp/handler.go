package otp

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/internal/middleware"
	"terminal-terrace/enroll-service/pkg/response"
)

type OTPHandler struct {
	service *OTPService
}

// handleRequest 重新发送验证码
// @Summary 重新发送邮箱验证码
// @Description 为当前登录用户重新生成验证码并发送到注册邮箱
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "发送成功"
// @Router /auth/request-otp [post]
func (h *OTPHandler) handleRequest(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidToken),
			response.WithErrorMessage("未提供认证令牌"),
		))
		return
	}

	if err := h.service.Issue(currentUser.ID); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}

// handleValidate 验证邮箱验证码
// @Summary 验证邮箱验证码
// @Description 校验当前登录用户提交的验证码, 成功后账号标记为已验证
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ValidateOTPRequest true "验证请求"
// @Success 200 {object} response.Response "验证成功"
// @Router /auth/validate-otp [post]
func (h *OTPHandler) handleValidate(c *gin.Context) {
	var req ValidateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidToken),
			response.WithErrorMessage("未提供认证令牌"),
		))
		return
	}

	result, err := h.service.Validate(currentUser.ID, req.OTP)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}
