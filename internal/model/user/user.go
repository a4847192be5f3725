package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid 角色是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID             string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName       string     `gorm:"column:full_name;type:varchar(100);not null" json:"fullName"`
	Email          string     `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	PasswordHash   string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	DateOfBirth    time.Time  `gorm:"column:date_of_birth;type:date" json:"dateOfBirth"`
	PhoneNumber    string     `gorm:"column:phone_number;type:varchar(20)" json:"phoneNumber"`
	EnrollmentDate time.Time  `gorm:"column:enrollment_date;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"enrollmentDate"`
	Major          string     `gorm:"column:major;type:varchar(100)" json:"major"`
	Role           Role       `gorm:"column:role;type:varchar(20);not null;default:'USER'" json:"role"`
	IsVerified     bool       `gorm:"column:is_verified;not null;default:false" json:"isVerified"`
	OTP            *string    `gorm:"column:otp;type:varchar(10)" json:"-"`
	OTPExpiration  *time.Time `gorm:"column:otp_expiration;type:timestamp" json:"-"`
	CreatedAt      time.Time  `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate 创建前生成 uuid 主键
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
