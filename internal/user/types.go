package user

// UpdateUserRequest 更新用户请求, 字段均可选
type UpdateUserRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Major       *string `json:"major"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
	Password    *string `json:"password"`    // 提交明文, 服务端重新加密
}

// UserInfo 对外暴露的用户信息, 不含密码哈希与验证码字段
type UserInfo struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
	Major       string `json:"major"`
	Role        string `json:"role"`
	IsVerified  bool   `json:"isVerified"`
}
