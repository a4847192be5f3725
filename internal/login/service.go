package login

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/internal/pkg"
	"terminal-terrace/enroll-service/pkg/response"
)

type LoginService struct {
	db *gorm.DB
}

func NewLoginService(db *gorm.DB) *LoginService {
	return &LoginService{db: db}
}

// Login 邮箱密码登录
// 流程: 参数校验 -> 按邮箱查询 -> 校验密码 -> 签发访问令牌
func (s *LoginService) Login(req LoginRequest) (LoginResponse, *response.BusinessError) {
	// 1. 参数规范化与校验
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if err := s.validateRequest(email, password); err != nil {
		return LoginResponse{}, err
	}

	// 2. 按邮箱查询用户
	var foundUser userModel.User
	result := s.db.Where("email = ?", email).First(&foundUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return LoginResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.DoesNotExist),
				response.WithErrorMessage("该邮箱未注册"),
			)
		}
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登录失败"),
			response.WithError(result.Error),
		)
	}

	// 3. 校验密码, bcrypt 比较本身是恒定时间的
	// 哈希损坏等比较错误一律按密码不匹配处理, 不作为旁路
	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.PasswordMismatch),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	// 4. 签发访问令牌
	token, err := pkg.GenerateAccessToken(foundUser.ID, foundUser.FullName, foundUser.Email, string(foundUser.Role))
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
			response.WithError(err),
		)
	}

	// 5. 返回结果
	return LoginResponse{
		Token: token,
		User: UserSummary{
			ID:         foundUser.ID,
			FullName:   foundUser.FullName,
			Email:      foundUser.Email,
			Major:      foundUser.Major,
			Role:       string(foundUser.Role),
			IsVerified: foundUser.IsVerified,
		},
	}, nil
}

// 参数校验
func (s *LoginService) validateRequest(email, password string) *response.BusinessError {
	if email == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("邮箱不能为空"),
		)
	}

	if password == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("密码不能为空"),
		)
	}

	return nil
}
