package enrollment

// CreateEnrollmentRequest 创建选课请求
type CreateEnrollmentRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"5d1c2b34-..."` // 学生ID
	CourseID  string `json:"courseId" binding:"required" example:"9f8e7d65-..."`  // 课程ID
}

// UpdateEnrollmentRequest 更新选课请求, 只允许改状态
type UpdateEnrollmentRequest struct {
	Status string `json:"status" binding:"required" example:"COMPLETED" enums:"ACTIVE,COMPLETED,DROPPED"`
}

// RecordGradeRequest 成绩录入请求
// Score 用指针承载, 0 分是合法成绩, 不能被 required 校验吞掉
type RecordGradeRequest struct {
	Score *float64 `json:"score" binding:"required" example:"92.5"`
}
