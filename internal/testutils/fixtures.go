package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	courseModel "terminal-terrace/enroll-service/internal/model/course"
	enrollmentModel "terminal-terrace/enroll-service/internal/model/enrollment"
	userModel "terminal-terrace/enroll-service/internal/model/user"
)

// CreateTestUser 创建测试用户, 邮箱随机保证唯一
func CreateTestUser(db *gorm.DB, opts ...UserOption) *userModel.User {
	uniqueID := uuid.New().String()

	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	testUser := &userModel.User{
		FullName:     fmt.Sprintf("test_user_%s", uniqueID[:8]),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID[:8]),
		PasswordHash: string(passwordHash),
		DateOfBirth:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber:  "13800000000",
		Major:        "软件工程",
		Role:         userModel.RoleUser,
		IsVerified:   false,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption 配置测试用户
type UserOption func(*userModel.User)

// WithEmail 设置邮箱
func WithEmail(email string) UserOption {
	return func(u *userModel.User) {
		u.Email = email
	}
}

// WithRole 设置角色
func WithRole(role userModel.Role) UserOption {
	return func(u *userModel.User) {
		u.Role = role
	}
}

// WithPassword 设置密码（自动加密）
func WithPassword(password string) UserOption {
	return func(u *userModel.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		u.PasswordHash = string(hash)
	}
}

// WithVerified 设置验证状态
func WithVerified(verified bool) UserOption {
	return func(u *userModel.User) {
		u.IsVerified = verified
	}
}

// WithOTP 设置待验证的验证码
func WithOTP(code string, expiration time.Time) UserOption {
	return func(u *userModel.User) {
		u.OTP = &code
		u.OTPExpiration = &expiration
	}
}

// CreateTestCourse 创建测试课程
func CreateTestCourse(db *gorm.DB) *courseModel.Course {
	uniqueID := uuid.New().String()

	testCourse := &courseModel.Course{
		CourseName:        fmt.Sprintf("test_course_%s", uniqueID[:8]),
		CourseDescription: "测试课程",
		Department:        "计算机学院",
		Credits:           4,
	}

	if err := db.Create(testCourse).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test course: %v", err))
	}

	return testCourse
}

// CreateTestEnrollment 创建测试选课记录
func CreateTestEnrollment(db *gorm.DB, studentID, courseID string) *enrollmentModel.Enrollment {
	testEnrollment := &enrollmentModel.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    enrollmentModel.StatusActive,
	}

	if err := db.Create(testEnrollment).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test enrollment: %v", err))
	}

	return testEnrollment
}

// FakeMailer 测试用邮件替身, 记录投递并可注入失败
type FakeMailer struct {
	Sent        int
	LastTo      string
	LastCode    string
	Fail        bool
	WelcomeSent int
	WelcomeTo   string
	FailWelcome bool
}

func (m *FakeMailer) SendVerificationCode(to string, username string, code string, expireMinutes int) error {
	if m.Fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.Sent++
	m.LastTo = to
	m.LastCode = code
	return nil
}

func (m *FakeMailer) SendWelcome(to string, username string) error {
	if m.FailWelcome {
		return fmt.Errorf("smtp unavailable")
	}
	m.WelcomeSent++
	m.WelcomeTo = to
	return nil
}
