package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/internal/testutils"
	"terminal-terrace/enroll-service/pkg/response"
)

func TestGenerateCode(t *testing.T) {
	code, err := generateCode()
	assert.NoError(t, err)
	assert.Len(t, code, CodeLength)

	// 验证码只包含数字
	for _, ch := range code {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestOTPService_Issue(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	mailer := &testutils.FakeMailer{}
	service := NewOTPService(db, mailer)

	testUser := testutils.CreateTestUser(db)

	bizErr := service.Issue(testUser.ID)
	assert.Nil(t, bizErr)

	assert.Equal(t, 1, mailer.Sent)
	assert.Equal(t, testUser.Email, mailer.LastTo)
	assert.Len(t, mailer.LastCode, CodeLength)

	var savedUser userModel.User
	assert.NoError(t, db.First(&savedUser, "id = ?", testUser.ID).Error)
	assert.NotNil(t, savedUser.OTP)
	assert.Equal(t, mailer.LastCode, *savedUser.OTP)
	assert.NotNil(t, savedUser.OTPExpiration)
	assert.True(t, savedUser.OTPExpiration.After(time.Now()))
}

func TestOTPService_Issue_OverwritesPreviousCode(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	mailer := &testutils.FakeMailer{}
	service := NewOTPService(db, mailer)

	testUser := testutils.CreateTestUser(db,
		testutils.WithOTP("111111", time.Now().Add(10*time.Minute)),
	)

	bizErr := service.Issue(testUser.ID)
	assert.Nil(t, bizErr)

	// 旧验证码被新码覆盖后立即失效
	_, validateErr := service.Validate(testUser.ID, "111111")
	assert.NotNil(t, validateErr)
	assert.Equal(t, response.OTPMismatch, validateErr.Code)

	result, validateErr := service.Validate(testUser.ID, mailer.LastCode)
	assert.Nil(t, validateErr)
	assert.True(t, result.IsVerified)
}

func TestOTPService_Issue_UserNotFound(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	bizErr := service.Issue("non-existent-id")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.DoesNotExist, bizErr.Code)
}

func TestOTPService_Issue_AlreadyVerified(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	mailer := &testutils.FakeMailer{}
	service := NewOTPService(db, mailer)

	testUser := testutils.CreateTestUser(db, testutils.WithVerified(true))

	bizErr := service.Issue(testUser.ID)
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.AlreadyVerified, bizErr.Code)
	assert.Equal(t, 0, mailer.Sent)
}

func TestOTPService_Issue_MailFailure(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{Fail: true})

	testUser := testutils.CreateTestUser(db)

	bizErr := service.Issue(testUser.ID)
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.OTPDeliveryFailed, bizErr.Code)
}

func TestOTPService_Validate(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	testUser := testutils.CreateTestUser(db,
		testutils.WithOTP("123456", time.Now().Add(10*time.Minute)),
	)

	result, bizErr := service.Validate(testUser.ID, "123456")
	assert.Nil(t, bizErr)
	assert.Equal(t, testUser.ID, result.ID)
	assert.Equal(t, testUser.Email, result.Email)
	assert.True(t, result.IsVerified)

	// 验证成功后置位并清空验证码字段
	var savedUser userModel.User
	assert.NoError(t, db.First(&savedUser, "id = ?", testUser.ID).Error)
	assert.True(t, savedUser.IsVerified)
	assert.Nil(t, savedUser.OTP)
	assert.Nil(t, savedUser.OTPExpiration)

	// 同一验证码不能二次使用
	_, bizErr = service.Validate(testUser.ID, "123456")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.AlreadyVerified, bizErr.Code)
}

func TestOTPService_Validate_Expired(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	// 验证码值完全正确但已过期, 仍然拒绝
	testUser := testutils.CreateTestUser(db,
		testutils.WithOTP("123456", time.Now().Add(-1*time.Minute)),
	)

	_, bizErr := service.Validate(testUser.ID, "123456")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.OTPExpired, bizErr.Code)

	// 用户仍未验证
	var savedUser userModel.User
	assert.NoError(t, db.First(&savedUser, "id = ?", testUser.ID).Error)
	assert.False(t, savedUser.IsVerified)
}

func TestOTPService_Validate_Mismatch(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	testUser := testutils.CreateTestUser(db,
		testutils.WithOTP("123456", time.Now().Add(10*time.Minute)),
	)

	_, bizErr := service.Validate(testUser.ID, "654321")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.OTPMismatch, bizErr.Code)

	var savedUser userModel.User
	assert.NoError(t, db.First(&savedUser, "id = ?", testUser.ID).Error)
	assert.False(t, savedUser.IsVerified)
}

func TestOTPService_Validate_NoCodeIssued(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	testUser := testutils.CreateTestUser(db)

	_, bizErr := service.Validate(testUser.ID, "123456")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.OTPMismatch, bizErr.Code)
}

func TestOTPService_Validate_AlreadyVerified(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	testUser := testutils.CreateTestUser(db,
		testutils.WithVerified(true),
		testutils.WithOTP("123456", time.Now().Add(10*time.Minute)),
	)

	_, bizErr := service.Validate(testUser.ID, "123456")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.AlreadyVerified, bizErr.Code)
}

func TestOTPService_Validate_UserNotFound(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewOTPService(db, &testutils.FakeMailer{})

	_, bizErr := service.Validate("non-existent-id", "123456")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.DoesNotExist, bizErr.Code)
}
