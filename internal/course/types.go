package course

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	CourseName        string `json:"courseName" binding:"required" example:"操作系统"`
	CourseDescription string `json:"courseDescription" example:"进程/内存/文件系统"`
	Department        string `json:"department" example:"计算机学院"`
	Credits           int    `json:"credits" binding:"required" example:"4"`
}

// UpdateCourseRequest 更新课程请求, 字段均可选
type UpdateCourseRequest struct {
	CourseName        *string `json:"courseName"`
	CourseDescription *string `json:"courseDescription"`
	Department        *string `json:"department"`
	Credits           *int    `json:"credits"`
}
