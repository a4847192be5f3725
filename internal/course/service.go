package course

import (
	"errors"

	"gorm.io/gorm"

	courseModel "terminal-terrace/enroll-service/internal/model/course"
	"terminal-terrace/enroll-service/pkg/response"
)

// CourseService 课程服务层
type CourseService struct {
	repo CourseRepository
}

// NewCourseService 创建服务实例
func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

// GetAllCourses 查询全部课程
func (s *CourseService) GetAllCourses() ([]courseModel.Course, *response.BusinessError) {
	courses, err := s.repo.FindAll()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询课程失败"),
			response.WithError(err),
		)
	}
	return courses, nil
}

// GetCourse 按ID查询课程
func (s *CourseService) GetCourse(id string) (*courseModel.Course, *response.BusinessError) {
	course, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.DoesNotExist),
				response.WithErrorMessage("课程不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询课程失败"),
			response.WithError(err),
		)
	}
	return course, nil
}

// CreateCourse 创建课程
func (s *CourseService) CreateCourse(req CreateCourseRequest) (*courseModel.Course, *response.BusinessError) {
	if req.Credits <= 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("学分必须大于0"),
		)
	}

	newCourse := courseModel.Course{
		CourseName:        req.CourseName,
		CourseDescription: req.CourseDescription,
		Department:        req.Department,
		Credits:           req.Credits,
	}
	if err := s.repo.Create(&newCourse); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建课程失败"),
			response.WithError(err),
		)
	}
	return &newCourse, nil
}

// UpdateCourse 更新课程
func (s *CourseService) UpdateCourse(id string, req UpdateCourseRequest) (*courseModel.Course, *response.BusinessError) {
	if _, err := s.GetCourse(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.CourseName != nil && *req.CourseName != "" {
		fields["course_name"] = *req.CourseName
	}
	if req.CourseDescription != nil {
		fields["course_description"] = *req.CourseDescription
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Credits != nil {
		if *req.Credits <= 0 {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("学分必须大于0"),
			)
		}
		fields["credits"] = *req.Credits
	}

	if len(fields) == 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("没有可更新的字段"),
		)
	}

	if err := s.repo.Update(id, fields); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新课程失败"),
			response.WithError(err),
		)
	}

	return s.GetCourse(id)
}

// DeleteCourse 删除课程
func (s *CourseService) DeleteCourse(id string) *response.BusinessError {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除课程失败"),
			response.WithError(err),
		)
	}
	return nil
}
