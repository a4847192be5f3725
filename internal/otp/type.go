package otp

// ValidateOTPRequest 验证邮箱验证码请求
type ValidateOTPRequest struct {
	OTP string `json:"otp" binding:"required" example:"483920"` // 邮箱验证码
}

// ValidateOTPResponse 验证结果
type ValidateOTPResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}
