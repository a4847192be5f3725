package config

import (
	"time"

	"terminal-terrace/enroll-service/pkg/email"
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	JWT       JWTConfig       `koanf:"jwt"`
	Smtp      email.Config    `koanf:"smtp"`
	OTP       OTPConfig       `koanf:"otp"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Cors      CorsConfig      `koanf:"cors"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时
}

type OTPConfig struct {
	ExpireMinutes int `koanf:"expire_minutes"` // 验证码有效期（分钟）
}

type RateLimitConfig struct {
	Max    int `koanf:"max"`    // 窗口内最大请求数
	Window int `koanf:"window"` // 窗口长度（秒）
}

type CorsConfig struct {
	AllowedOrigin string `koanf:"allowed_origin"`
}
