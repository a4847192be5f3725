package enrollment

import (
	"gorm.io/gorm"

	enrollmentModel "terminal-terrace/enroll-service/internal/model/enrollment"
)

// EnrollmentRepository 选课数据访问接口
type EnrollmentRepository interface {
	FindAll() ([]enrollmentModel.Enrollment, error)
	FindByID(id string) (*enrollmentModel.Enrollment, error)
	FindByStudentAndCourse(studentID, courseID string) (*enrollmentModel.Enrollment, error)
	Create(enrollment *enrollmentModel.Enrollment) error
	UpdateStatus(id string, status enrollmentModel.Status) error
	Delete(id string) error
	CreateGrade(grade *enrollmentModel.Grade) error
}

// enrollmentRepository 实现
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository 创建 Repository 实例
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// preload 关联学生/课程/成绩一起加载, 成绩按录入时间升序
func (r *enrollmentRepository) preload() *gorm.DB {
	return r.db.
		Preload("Student").
		Preload("Course").
		Preload("Grades", func(db *gorm.DB) *gorm.DB {
			return db.Order("graded_at ASC")
		})
}

// FindAll 查询全部选课记录
func (r *enrollmentRepository) FindAll() ([]enrollmentModel.Enrollment, error) {
	var enrollments []enrollmentModel.Enrollment
	err := r.preload().Order("enrollment_date ASC").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// FindByID 按ID查询选课记录
func (r *enrollmentRepository) FindByID(id string) (*enrollmentModel.Enrollment, error) {
	var enrollment enrollmentModel.Enrollment
	err := r.preload().First(&enrollment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// FindByStudentAndCourse 按 (学生, 课程) 查询选课记录
func (r *enrollmentRepository) FindByStudentAndCourse(studentID, courseID string) (*enrollmentModel.Enrollment, error) {
	var enrollment enrollmentModel.Enrollment
	err := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create 创建选课记录
func (r *enrollmentRepository) Create(enrollment *enrollmentModel.Enrollment) error {
	return r.db.Create(enrollment).Error
}

// UpdateStatus 更新选课状态
func (r *enrollmentRepository) UpdateStatus(id string, status enrollmentModel.Status) error {
	return r.db.Model(&enrollmentModel.Enrollment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete 删除选课记录及其成绩
func (r *enrollmentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&enrollmentModel.Grade{}, "enrollment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&enrollmentModel.Enrollment{}, "id = ?", id).Error
	})
}

// CreateGrade 录入成绩
func (r *enrollmentRepository) CreateGrade(grade *enrollmentModel.Grade) error {
	return r.db.Create(grade).Error
}
