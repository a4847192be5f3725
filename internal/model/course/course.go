package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID                string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CourseName        string    `gorm:"column:course_name;type:varchar(100);not null" json:"courseName"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"courseDescription"`
	Department        string    `gorm:"column:department;type:varchar(100)" json:"department"`
	Credits           int       `gorm:"column:credits;not null;default:0" json:"credits"`
	CreatedAt         time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// BeforeCreate 创建前生成 uuid 主键
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
