package course

import (
	"gorm.io/gorm"

	courseModel "terminal-terrace/enroll-service/internal/model/course"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	FindAll() ([]courseModel.Course, error)
	FindByID(id string) (*courseModel.Course, error)
	Create(course *courseModel.Course) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

// courseRepository 实现
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository 创建 Repository 实例
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// FindAll 查询全部课程
func (r *courseRepository) FindAll() ([]courseModel.Course, error) {
	var courses []courseModel.Course
	err := r.db.Order("course_name ASC").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByID 按ID查询课程
func (r *courseRepository) FindByID(id string) (*courseModel.Course, error) {
	var course courseModel.Course
	err := r.db.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create 创建课程
func (r *courseRepository) Create(course *courseModel.Course) error {
	return r.db.Create(course).Error
}

// Update 更新指定字段
func (r *courseRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&courseModel.Course{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除课程
func (r *courseRepository) Delete(id string) error {
	return r.db.Delete(&courseModel.Course{}, "id = ?", id).Error
}
