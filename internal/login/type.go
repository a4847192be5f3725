package login

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"` // 邮箱
	Password string `json:"password" binding:"required" example:"Password123"`         // 密码
}

// UserSummary 登录返回的用户摘要, 不含任何敏感字段
type UserSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Major      string `json:"major"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string      `json:"token"` // JWT 访问令牌
	User  UserSummary `json:"user"`
}
