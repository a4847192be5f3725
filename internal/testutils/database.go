package testutils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/enroll-service/config"
	"terminal-terrace/enroll-service/internal/model"
)

// SetupTestDB 创建内存 sqlite 测试库并完成建表迁移
// 限制为单连接, 保证所有操作落在同一个内存库上
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // 测试中关闭 SQL 日志
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SetupTestConfig 初始化测试用进程级配置
func SetupTestConfig(t *testing.T) {
	t.Helper()

	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 24,
		},
		OTP: config.OTPConfig{
			ExpireMinutes: 10,
		},
	}
}
