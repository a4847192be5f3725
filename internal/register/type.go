package register

// RegisterRequest 注册请求
type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required" example:"张三"`                 // 姓名
	Password    string `json:"password" binding:"required" example:"Password123"`        // 密码
	Email       string `json:"email" binding:"required,email" example:"user@example.com"` // 邮箱
	DateOfBirth string `json:"dateOfBirth" binding:"required" example:"2003-09-01"`      // 出生日期 YYYY-MM-DD
	PhoneNumber string `json:"phoneNumber" binding:"required" example:"13800000000"`     // 手机号
	Major       string `json:"major" example:"软件工程"`                                    // 专业
	Role        string `json:"role" example:"USER"`                                      // 角色, 默认 USER
}

// RegisterResponse 注册响应, 不包含令牌, 用户需先完成邮箱验证再登录
type RegisterResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Major      string `json:"major"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}
