package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/pkg/response"
)

// UserService 用户服务层
type UserService struct {
	repo UserRepository
}

// NewUserService 创建用户服务实例
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// toUserInfo 转换为对外信息
func toUserInfo(u *userModel.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth.Format("2006-01-02"),
		PhoneNumber: u.PhoneNumber,
		Major:       u.Major,
		Role:        string(u.Role),
		IsVerified:  u.IsVerified,
	}
}

// GetAllUsers 查询全部用户
func (s *UserService) GetAllUsers() ([]UserInfo, *response.BusinessError) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	result := make([]UserInfo, len(users))
	for i := range users {
		result[i] = toUserInfo(&users[i])
	}
	return result, nil
}

// GetUser 按ID查询用户
func (s *UserService) GetUser(id string) (*UserInfo, *response.BusinessError) {
	foundUser, err := s.repo.FindByID(id)
	if err != nil {
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
	info := toUserInfo(foundUser)
	return &info, nil
}

// UpdateUser 更新用户资料
// 只允许更新资料类字段, 邮箱/角色/验证状态不在此接口修改
func (s *UserService) UpdateUser(id string, req UpdateUserRequest) (*UserInfo, *response.BusinessError) {
	if _, err := s.repo.FindByID(id); err != nil {
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

	fields := map[string]interface{}{}
	if req.FullName != nil && *req.FullName != "" {
		fields["full_name"] = *req.FullName
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("出生日期格式不正确, 应为 YYYY-MM-DD"),
			)
		}
		fields["date_of_birth"] = dateOfBirth
	}
	if req.Password != nil {
		password := strings.TrimSpace(*req.Password)
		if len(password) < 6 || len(password) > 100 {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("密码长度必须在6-100个字符之间"),
			)
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("密码加密失败"),
				response.WithError(err),
			)
		}
		fields["password_hash"] = string(hashedPassword)
	}

	if len(fields) == 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("没有可更新的字段"),
		)
	}

	if err := s.repo.Update(id, fields); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新用户失败"),
			response.WithError(err),
		)
	}

	updatedUser, err := s.repo.FindByID(id)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}
	info := toUserInfo(updatedUser)
	return &info, nil
}

// DeleteUser 删除用户
func (s *UserService) DeleteUser(id string) *response.BusinessError {
	if _, err := s.repo.FindByID(id); err != nil {
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

	if err := s.repo.Delete(id); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除用户失败"),
			response.WithError(err),
		)
	}
	return nil
}
