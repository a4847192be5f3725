package enrollment

import (
	"errors"

	"gorm.io/gorm"

	courseModel "terminal-terrace/enroll-service/internal/model/course"
	enrollmentModel "terminal-terrace/enroll-service/internal/model/enrollment"
	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/pkg/response"
)

// EnrollmentService 选课服务层
type EnrollmentService struct {
	repo EnrollmentRepository
	db   *gorm.DB
}

// NewEnrollmentService 创建服务实例
func NewEnrollmentService(repo EnrollmentRepository, db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{repo: repo, db: db}
}

// GetAllEnrollments 查询全部选课记录
func (s *EnrollmentService) GetAllEnrollments() ([]enrollmentModel.Enrollment, *response.BusinessError) {
	enrollments, err := s.repo.FindAll()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询选课记录失败"),
			response.WithError(err),
		)
	}
	return enrollments, nil
}

// GetEnrollment 按ID查询选课记录
func (s *EnrollmentService) GetEnrollment(id string) (*enrollmentModel.Enrollment, *response.BusinessError) {
	enrollment, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.DoesNotExist),
				response.WithErrorMessage("选课记录不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询选课记录失败"),
			response.WithError(err),
		)
	}
	return enrollment, nil
}

// CreateEnrollment 创建选课记录
// 学生与课程必须存在, 同一学生同一课程只能有一条记录
func (s *EnrollmentService) CreateEnrollment(req CreateEnrollmentRequest) (*enrollmentModel.Enrollment, *response.BusinessError) {
	// 1. 校验学生存在
	var student userModel.User
	if err := s.db.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.DoesNotExist),
				response.WithErrorMessage("学生不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询学生失败"),
			response.WithError(err),
		)
	}

	// 2. 校验课程存在
	var course courseModel.Course
	if err := s.db.First(&course, "id = ?", req.CourseID).Error; err != nil {
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

	// 3. 重复选课检查
	_, lookupErr := s.repo.FindByStudentAndCourse(req.StudentID, req.CourseID)
	if lookupErr == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Duplicate),
			response.WithErrorMessage("该学生已选修此课程"),
		)
	}
	if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询选课记录失败"),
			response.WithError(lookupErr),
		)
	}

	// 4. 创建记录
	newEnrollment := enrollmentModel.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    enrollmentModel.StatusActive,
	}
	if err := s.repo.Create(&newEnrollment); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建选课记录失败"),
			response.WithError(err),
		)
	}

	created, err := s.repo.FindByID(newEnrollment.ID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询选课记录失败"),
			response.WithError(err),
		)
	}
	return created, nil
}

// checkOwnership 归属检查: 只有选课学生本人或管理员可以修改/删除
func (s *EnrollmentService) checkOwnership(enrollment *enrollmentModel.Enrollment, actor *userModel.User) *response.BusinessError {
	if actor.Role == userModel.RoleAdmin {
		return nil
	}
	if enrollment.StudentID != actor.ID {
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只能操作本人的选课记录"),
		)
	}
	return nil
}

// UpdateEnrollment 更新选课状态
func (s *EnrollmentService) UpdateEnrollment(id string, req UpdateEnrollmentRequest, actor *userModel.User) (*enrollmentModel.Enrollment, *response.BusinessError) {
	status := enrollmentModel.Status(req.Status)
	if !status.Valid() {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("选课状态不合法"),
		)
	}

	enrollment, bizErr := s.GetEnrollment(id)
	if bizErr != nil {
		return nil, bizErr
	}

	if err := s.checkOwnership(enrollment, actor); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新选课记录失败"),
			response.WithError(err),
		)
	}

	return s.GetEnrollment(id)
}

// DeleteEnrollment 删除选课记录
func (s *EnrollmentService) DeleteEnrollment(id string, actor *userModel.User) *response.BusinessError {
	enrollment, bizErr := s.GetEnrollment(id)
	if bizErr != nil {
		return bizErr
	}

	if err := s.checkOwnership(enrollment, actor); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除选课记录失败"),
			response.WithError(err),
		)
	}
	return nil
}

// RecordGrade 录入成绩, 仅管理员路由挂载
func (s *EnrollmentService) RecordGrade(id string, req RecordGradeRequest) (*enrollmentModel.Enrollment, *response.BusinessError) {
	if req.Score == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("成绩不能为空"),
		)
	}
	if *req.Score < 0 || *req.Score > 100 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("成绩必须在0-100之间"),
		)
	}

	if _, bizErr := s.GetEnrollment(id); bizErr != nil {
		return nil, bizErr
	}

	grade := enrollmentModel.Grade{
		EnrollmentID: id,
		Score:        *req.Score,
	}
	if err := s.repo.CreateGrade(&grade); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("录入成绩失败"),
			response.WithError(err),
		)
	}

	return s.GetEnrollment(id)
}
