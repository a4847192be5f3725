package enrollment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "terminal-terrace/enroll-service/internal/model/course"
	userModel "terminal-terrace/enroll-service/internal/model/user"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusDropped   Status = "DROPPED"
)

// Valid 选课状态是否合法
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted || s == StatusDropped
}

// Enrollment 选课记录, (student_id, course_id) 联合唯一
type Enrollment struct {
	ID             string              `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StudentID      string              `gorm:"column:student_id;type:uuid;not null;uniqueIndex:idx_student_course" json:"studentId"`
	CourseID       string              `gorm:"column:course_id;type:uuid;not null;uniqueIndex:idx_student_course" json:"courseId"`
	EnrollmentDate time.Time           `gorm:"column:enrollment_date;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"enrollmentDate"`
	Status         Status              `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	Student        *userModel.User     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course         *courseModel.Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Grades         []Grade             `gorm:"foreignKey:EnrollmentID" json:"grades"`
	CreatedAt      time.Time           `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// BeforeCreate 创建前生成 uuid 主键
func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Grade 选课成绩, 按录入时间升序构成成绩序列
type Grade struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EnrollmentID string    `gorm:"column:enrollment_id;type:uuid;not null;index" json:"enrollmentId"`
	Score        float64   `gorm:"column:score;not null" json:"score"`
	GradedAt     time.Time `gorm:"column:graded_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"gradedAt"`
}

func (Grade) TableName() string {
	return "grades"
}
