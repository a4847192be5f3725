package response

import "net/http"

// Response 统一响应结构
// status/error/statusCode 三个字段一起返回, 前端按 statusCode 处理
type Response struct {
	Status     string `json:"status"`
	Error      bool   `json:"error"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// SuccessResponse 200 成功响应
func SuccessResponse(data any) Response {
	return Response{
		Status:     "success",
		Error:      false,
		StatusCode: http.StatusOK,
		Data:       data,
	}
}

// CreatedResponse 201 创建成功响应
func CreatedResponse(data any) Response {
	return Response{
		Status:     "success",
		Error:      false,
		StatusCode: http.StatusCreated,
		Data:       data,
	}
}

// ErrorResponse 错误响应, statusCode 由业务错误码映射得到
func ErrorResponse(code ErrorCode, msg string) Response {
	return Response{
		Status:     "error",
		Error:      true,
		StatusCode: code.HTTPStatus(),
		Message:    msg,
	}
}
