package register

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/internal/otp"
	"terminal-terrace/enroll-service/pkg/response"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{6,20}$`)
)

// Mailer 注册流程用到的邮件能力: 验证码 + 欢迎邮件
type Mailer interface {
	otp.Mailer
	SendWelcome(to string, username string) error
}

type RegisterService struct {
	db         *gorm.DB
	otpService *otp.OTPService
	mailer     Mailer
}

func NewRegisterService(db *gorm.DB, otpService *otp.OTPService, mailer Mailer) *RegisterService {
	return &RegisterService{db: db, otpService: otpService, mailer: mailer}
}

// Register 账号密码注册
// 流程: 参数校验 -> 查重 -> 密码加密 -> 落库(未验证) -> 发送验证码邮件
// 邮件发送失败时用户行保留, 可通过 request-otp 补发
func (s *RegisterService) Register(req RegisterRequest) (RegisterResponse, *response.BusinessError) {
	// 1. 参数校验与规范化
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)
	if err := s.validateRequest(req); err != nil {
		return RegisterResponse{}, err
	}

	role := userModel.Role(req.Role)
	if req.Role == "" {
		role = userModel.RoleUser
	}
	if !role.Valid() {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("角色不合法"),
		)
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("出生日期格式不正确, 应为 YYYY-MM-DD"),
		)
	}

	// 2. 检查邮箱是否已存在
	var existingUser userModel.User
	lookupErr := s.db.Where("email = ?", req.Email).First(&existingUser).Error
	if lookupErr == nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Duplicate),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}
	if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(lookupErr),
		)
	}

	// 3. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
			response.WithError(err),
		)
	}

	// 4. 创建用户, 初始未验证
	newUser := userModel.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		DateOfBirth:  dateOfBirth,
		PhoneNumber:  req.PhoneNumber,
		Major:        req.Major,
		Role:         role,
		IsVerified:   false,
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
			response.WithError(err),
		)
	}

	// 5. 发送邮箱验证码
	if otpErr := s.otpService.Issue(newUser.ID); otpErr != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.OTPDeliveryFailed),
			response.WithErrorMessage("注册成功但验证码发送失败, 请稍后重新获取验证码"),
			response.WithError(otpErr.Err),
		)
	}

	// 6. 发送欢迎邮件, 尽力投递, 失败不影响注册结果
	if err := s.mailer.SendWelcome(newUser.Email, newUser.FullName); err != nil {
		log.Printf("发送欢迎邮件失败 [%s]: %v", newUser.Email, err)
	}

	// 7. 返回结果
	return RegisterResponse{
		ID:         newUser.ID,
		FullName:   newUser.FullName,
		Email:      newUser.Email,
		Major:      newUser.Major,
		Role:       string(newUser.Role),
		IsVerified: newUser.IsVerified,
	}, nil
}

// 参数校验
func (s *RegisterService) validateRequest(req RegisterRequest) *response.BusinessError {
	if req.FullName == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("姓名不能为空"),
		)
	}
	if len(req.FullName) > 100 {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("姓名长度不能超过100个字符"),
		)
	}

	if req.Email == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("邮箱不能为空"),
		)
	}
	if !emailRegex.MatchString(req.Email) {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("邮箱格式不正确"),
		)
	}

	if req.Password == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("密码不能为空"),
		)
	}
	if len(req.Password) < 6 || len(req.Password) > 100 {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("密码长度必须在6-100个字符之间"),
		)
	}

	if req.PhoneNumber == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("手机号不能为空"),
		)
	}
	if !phoneRegex.MatchString(req.PhoneNumber) {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("手机号格式不正确"),
		)
	}

	return nil
}
