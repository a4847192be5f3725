package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	enrollmentModel "terminal-terrace/enroll-service/internal/model/enrollment"
	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/internal/testutils"
	"terminal-terrace/enroll-service/pkg/response"
)

func setupService(t *testing.T) (*EnrollmentService, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	return NewEnrollmentService(NewEnrollmentRepository(db), db), db
}

func scorePtr(score float64) *float64 {
	return &score
}

func TestEnrollmentService_CreateEnrollment(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db, testutils.WithVerified(true))
	course := testutils.CreateTestCourse(db)

	created, bizErr := service.CreateEnrollment(CreateEnrollmentRequest{
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	assert.Nil(t, bizErr)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, student.ID, created.StudentID)
	assert.Equal(t, course.ID, created.CourseID)
	assert.Equal(t, enrollmentModel.StatusActive, created.Status)

	// 关联数据一并返回
	assert.NotNil(t, created.Student)
	assert.Equal(t, student.Email, created.Student.Email)
	assert.NotNil(t, created.Course)
	assert.Equal(t, course.CourseName, created.Course.CourseName)
}

func TestEnrollmentService_CreateEnrollment_StudentNotFound(t *testing.T) {
	service, db := setupService(t)

	course := testutils.CreateTestCourse(db)

	_, bizErr := service.CreateEnrollment(CreateEnrollmentRequest{
		StudentID: "non-existent-id",
		CourseID:  course.ID,
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.DoesNotExist, bizErr.Code)
	assert.Equal(t, "学生不存在", bizErr.Msg)
}

func TestEnrollmentService_CreateEnrollment_CourseNotFound(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db)

	_, bizErr := service.CreateEnrollment(CreateEnrollmentRequest{
		StudentID: student.ID,
		CourseID:  "non-existent-id",
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.DoesNotExist, bizErr.Code)
	assert.Equal(t, "课程不存在", bizErr.Msg)
}

func TestEnrollmentService_CreateEnrollment_Duplicate(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db)
	course := testutils.CreateTestCourse(db)
	testutils.CreateTestEnrollment(db, student.ID, course.ID)

	_, bizErr := service.CreateEnrollment(CreateEnrollmentRequest{
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.Duplicate, bizErr.Code)

	// 同一学生可以选其他课程
	otherCourse := testutils.CreateTestCourse(db)
	_, bizErr = service.CreateEnrollment(CreateEnrollmentRequest{
		StudentID: student.ID,
		CourseID:  otherCourse.ID,
	})
	assert.Nil(t, bizErr)
}

func TestEnrollmentService_CreateEnrollment_LookupFailure(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db)
	course := testutils.CreateTestCourse(db)

	// 查重阶段的存储故障按内部错误返回, 而不是落到创建阶段
	assert.NoError(t, db.Migrator().DropTable(&enrollmentModel.Enrollment{}))

	_, bizErr := service.CreateEnrollment(CreateEnrollmentRequest{
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.Fail, bizErr.Code)
}

func TestEnrollmentService_GetEnrollment_NotFound(t *testing.T) {
	service, _ := setupService(t)

	_, bizErr := service.GetEnrollment("non-existent-id")
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.DoesNotExist, bizErr.Code)
}

func TestEnrollmentService_UpdateEnrollment(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db)
	course := testutils.CreateTestCourse(db)
	enrollment := testutils.CreateTestEnrollment(db, student.ID, course.ID)

	t.Run("本人可以更新状态", func(t *testing.T) {
		updated, bizErr := service.UpdateEnrollment(enrollment.ID, UpdateEnrollmentRequest{
			Status: "COMPLETED",
		}, student)
		assert.Nil(t, bizErr)
		assert.Equal(t, enrollmentModel.StatusCompleted, updated.Status)
	})

	t.Run("非法状态被拒绝", func(t *testing.T) {
		_, bizErr := service.UpdateEnrollment(enrollment.ID, UpdateEnrollmentRequest{
			Status: "PAUSED",
		}, student)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	})

	t.Run("他人不能更新", func(t *testing.T) {
		otherUser := testutils.CreateTestUser(db)
		_, bizErr := service.UpdateEnrollment(enrollment.ID, UpdateEnrollmentRequest{
			Status: "DROPPED",
		}, otherUser)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	t.Run("管理员可以更新任意记录", func(t *testing.T) {
		adminUser := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleAdmin))
		updated, bizErr := service.UpdateEnrollment(enrollment.ID, UpdateEnrollmentRequest{
			Status: "DROPPED",
		}, adminUser)
		assert.Nil(t, bizErr)
		assert.Equal(t, enrollmentModel.StatusDropped, updated.Status)
	})
}

func TestEnrollmentService_DeleteEnrollment(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db)
	course := testutils.CreateTestCourse(db)

	t.Run("他人不能删除", func(t *testing.T) {
		enrollment := testutils.CreateTestEnrollment(db, student.ID, course.ID)
		otherUser := testutils.CreateTestUser(db)

		bizErr := service.DeleteEnrollment(enrollment.ID, otherUser)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)

		assert.NoError(t, db.Delete(&enrollmentModel.Enrollment{}, "id = ?", enrollment.ID).Error)
	})

	t.Run("本人可以删除并级联清理成绩", func(t *testing.T) {
		enrollment := testutils.CreateTestEnrollment(db, student.ID, course.ID)
		assert.NoError(t, db.Create(&enrollmentModel.Grade{
			EnrollmentID: enrollment.ID,
			Score:        88,
		}).Error)

		bizErr := service.DeleteEnrollment(enrollment.ID, student)
		assert.Nil(t, bizErr)

		_, bizErr = service.GetEnrollment(enrollment.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.DoesNotExist, bizErr.Code)

		var gradeCount int64
		db.Model(&enrollmentModel.Grade{}).Where("enrollment_id = ?", enrollment.ID).Count(&gradeCount)
		assert.Equal(t, int64(0), gradeCount)
	})

	t.Run("删除不存在的记录", func(t *testing.T) {
		bizErr := service.DeleteEnrollment("non-existent-id", student)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.DoesNotExist, bizErr.Code)
	})
}

func TestEnrollmentService_RecordGrade(t *testing.T) {
	service, db := setupService(t)

	student := testutils.CreateTestUser(db)
	course := testutils.CreateTestCourse(db)
	enrollment := testutils.CreateTestEnrollment(db, student.ID, course.ID)

	t.Run("录入有效成绩", func(t *testing.T) {
		updated, bizErr := service.RecordGrade(enrollment.ID, RecordGradeRequest{Score: scorePtr(92.5)})
		assert.Nil(t, bizErr)
		assert.Len(t, updated.Grades, 1)
		assert.Equal(t, 92.5, updated.Grades[0].Score)
	})

	t.Run("成绩可以多次录入", func(t *testing.T) {
		updated, bizErr := service.RecordGrade(enrollment.ID, RecordGradeRequest{Score: scorePtr(85)})
		assert.Nil(t, bizErr)
		assert.Len(t, updated.Grades, 2)
	})

	t.Run("0分是合法成绩", func(t *testing.T) {
		updated, bizErr := service.RecordGrade(enrollment.ID, RecordGradeRequest{Score: scorePtr(0)})
		assert.Nil(t, bizErr)
		assert.Len(t, updated.Grades, 3)
	})

	t.Run("成绩缺失被拒绝", func(t *testing.T) {
		_, bizErr := service.RecordGrade(enrollment.ID, RecordGradeRequest{})
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	})

	t.Run("成绩越界被拒绝", func(t *testing.T) {
		_, bizErr := service.RecordGrade(enrollment.ID, RecordGradeRequest{Score: scorePtr(101)})
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)

		_, bizErr = service.RecordGrade(enrollment.ID, RecordGradeRequest{Score: scorePtr(-1)})
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	})

	t.Run("选课记录不存在", func(t *testing.T) {
		_, bizErr := service.RecordGrade("non-existent-id", RecordGradeRequest{Score: scorePtr(60)})
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.DoesNotExist, bizErr.Code)
	})
}
