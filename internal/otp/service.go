package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/enroll-service/config"
	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/pkg/response"
)

const (
	// 验证码长度
	CodeLength = 6
	// 验证码默认有效期（分钟）
	DefaultExpireMinutes = 10
)

// Mailer 验证码投递接口, 便于测试替换
type Mailer interface {
	SendVerificationCode(to string, username string, code string, expireMinutes int) error
}

type OTPService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewOTPService(db *gorm.DB, mailer Mailer) *OTPService {
	return &OTPService{db: db, mailer: mailer}
}

// generateCode 生成固定长度的随机数字验证码
func generateCode() (string, error) {
	code := ""
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("生成验证码失败: %w", err)
		}
		code += n.String()
	}
	return code, nil
}

// ExpireMinutes 验证码有效期（分钟）
func ExpireMinutes() int {
	if config.Conf != nil && config.Conf.OTP.ExpireMinutes > 0 {
		return config.Conf.OTP.ExpireMinutes
	}
	return DefaultExpireMinutes
}

// Issue 为指定用户生成并投递验证码
// 覆盖用户行上已有的待验证验证码, 旧码随之失效
func (s *OTPService) Issue(userID string) *response.BusinessError {
	var foundUser userModel.User
	if err := s.db.First(&foundUser, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.DoesNotExist),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	if foundUser.IsVerified {
		return response.NewBusinessError(
			response.WithErrorCode(response.AlreadyVerified),
			response.WithErrorMessage("邮箱已验证, 无需重复验证"),
		)
	}

	code, err := generateCode()
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成验证码失败"),
			response.WithError(err),
		)
	}

	expiration := time.Now().Add(time.Duration(ExpireMinutes()) * time.Minute)
	if err := s.db.Model(&userModel.User{}).
		Where("id = ?", foundUser.ID).
		Updates(map[string]interface{}{
			"otp":            code,
			"otp_expiration": expiration,
		}).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("存储验证码失败"),
			response.WithError(err),
		)
	}

	if err := s.mailer.SendVerificationCode(foundUser.Email, foundUser.FullName, code, ExpireMinutes()); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.OTPDeliveryFailed),
			response.WithErrorMessage("发送验证码邮件失败"),
			response.WithError(err),
		)
	}

	return nil
}

// Validate 校验用户提交的验证码
// 成功时置 is_verified 并在同一条 UPDATE 中清空验证码字段,
// WHERE 条件带 otp 值, 保证验证码单次使用
func (s *OTPService) Validate(userID string, submittedCode string) (*ValidateOTPResponse, *response.BusinessError) {
	var foundUser userModel.User
	if err := s.db.First(&foundUser, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.DoesNotExist),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	if foundUser.IsVerified {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.AlreadyVerified),
			response.WithErrorMessage("邮箱已验证, 无需重复验证"),
		)
	}

	if foundUser.OTP == nil || foundUser.OTPExpiration == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.OTPMismatch),
			response.WithErrorMessage("验证码不存在, 请先获取验证码"),
		)
	}

	// 先判断过期, 即使验证码值完全匹配也拒绝
	if time.Now().After(*foundUser.OTPExpiration) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.OTPExpired),
			response.WithErrorMessage("验证码已过期, 请重新获取"),
		)
	}

	if *foundUser.OTP != submittedCode {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.OTPMismatch),
			response.WithErrorMessage("验证码错误"),
		)
	}

	result := s.db.Model(&userModel.User{}).
		Where("id = ? AND otp = ?", foundUser.ID, submittedCode).
		Updates(map[string]interface{}{
			"is_verified":    true,
			"otp":            nil,
			"otp_expiration": nil,
		})
	if result.Error != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新验证状态失败"),
			response.WithError(result.Error),
		)
	}
	// 并发下验证码可能已被消费
	if result.RowsAffected == 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.OTPMismatch),
			response.WithErrorMessage("验证码错误"),
		)
	}

	return &ValidateOTPResponse{
		ID:         foundUser.ID,
		Email:      foundUser.Email,
		IsVerified: true,
	}, nil
}
