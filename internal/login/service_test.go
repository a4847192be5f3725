package login

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/internal/pkg"
	"terminal-terrace/enroll-service/internal/testutils"
	"terminal-terrace/enroll-service/pkg/response"
)

func TestLoginService_validateRequest(t *testing.T) {
	service := &LoginService{}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "有效的登录请求",
			email:    "test@example.com",
			password: "Password123",
			wantErr:  false,
		},
		{
			name:     "邮箱为空",
			email:    "",
			password: "Password123",
			wantErr:  true,
			errMsg:   "邮箱不能为空",
		},
		{
			name:     "密码为空",
			email:    "test@example.com",
			password: "",
			wantErr:  true,
			errMsg:   "密码不能为空",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.validateRequest(tt.email, tt.password)

			if tt.wantErr {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errMsg, err.Msg)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestLoginService_Login(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	testUser := testutils.CreateTestUser(db,
		testutils.WithEmail("zhangsan@example.com"),
		testutils.WithPassword("Password123"),
		testutils.WithVerified(true),
	)

	service := NewLoginService(db)

	result, bizErr := service.Login(LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "Password123",
	})
	assert.Nil(t, bizErr)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, testUser.ID, result.User.ID)
	assert.Equal(t, testUser.Email, result.User.Email)
	assert.True(t, result.User.IsVerified)

	// 令牌中的声明与用户一致
	claims, err := pkg.ParseAccessToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, claims.UserID)
	assert.Equal(t, testUser.Email, claims.Email)
	assert.Equal(t, string(testUser.Role), claims.Role)
}

func TestLoginService_Login_EmailCaseInsensitive(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	testutils.CreateTestUser(db,
		testutils.WithEmail("zhangsan@example.com"),
		testutils.WithPassword("Password123"),
	)

	service := NewLoginService(db)

	result, bizErr := service.Login(LoginRequest{
		Email:    "  ZhangSan@Example.COM ",
		Password: "Password123",
	})
	assert.Nil(t, bizErr)
	assert.NotEmpty(t, result.Token)
}

func TestLoginService_Login_WrongPassword(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	testutils.CreateTestUser(db,
		testutils.WithEmail("zhangsan@example.com"),
		testutils.WithPassword("Password123"),
	)

	service := NewLoginService(db)

	result, bizErr := service.Login(LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "WrongPassword",
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.PasswordMismatch, bizErr.Code)
	assert.Empty(t, result.Token)
}

func TestLoginService_Login_UnknownEmail(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	service := NewLoginService(db)

	result, bizErr := service.Login(LoginRequest{
		Email:    "nobody@example.com",
		Password: "Password123",
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.DoesNotExist, bizErr.Code)
	assert.Empty(t, result.Token)
}

func TestLoginService_Login_UnverifiedUserCanLogin(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	// 未验证用户可以登录, 但受保护接口会被验证门禁拦截
	testutils.CreateTestUser(db,
		testutils.WithEmail("unverified@example.com"),
		testutils.WithPassword("Password123"),
		testutils.WithVerified(false),
	)

	service := NewLoginService(db)

	result, bizErr := service.Login(LoginRequest{
		Email:    "unverified@example.com",
		Password: "Password123",
	})
	assert.Nil(t, bizErr)
	assert.NotEmpty(t, result.Token)
	assert.False(t, result.User.IsVerified)
}

func TestLoginService_Login_RoleInToken(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	testutils.CreateTestUser(db,
		testutils.WithEmail("admin@example.com"),
		testutils.WithPassword("Password123"),
		testutils.WithRole(userModel.RoleAdmin),
	)

	service := NewLoginService(db)

	result, bizErr := service.Login(LoginRequest{
		Email:    "admin@example.com",
		Password: "Password123",
	})
	assert.Nil(t, bizErr)

	claims, err := pkg.ParseAccessToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
}
