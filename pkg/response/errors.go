package response

import "net/http"

type ErrorCode int

// 业务错误码
const (
	// 未分类失败
	Fail ErrorCode = iota
	// 参数解析错误
	ParseError
	// 参数错误
	InvalidParameter
	// 资源不存在
	DoesNotExist
	// 密码不匹配
	PasswordMismatch
	// 资源重复(邮箱已注册 / 重复选课)
	Duplicate
	// 令牌缺失或无效
	InvalidToken
	// 邮箱未验证
	NotVerified
	// 无权限
	Forbidden
	// 验证码不匹配
	OTPMismatch
	// 验证码已过期
	OTPExpired
	// 验证码邮件发送失败
	OTPDeliveryFailed
	// 邮箱已验证, 无需重复验证
	AlreadyVerified
	// 请求过于频繁
	TooManyRequests
)

// HTTPStatus 业务错误码到 HTTP 状态码的映射
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ParseError, InvalidParameter, OTPMismatch, OTPExpired:
		return http.StatusBadRequest
	case InvalidToken, PasswordMismatch:
		return http.StatusUnauthorized
	case NotVerified, Forbidden:
		return http.StatusForbidden
	case DoesNotExist:
		return http.StatusNotFound
	case Duplicate, AlreadyVerified:
		return http.StatusConflict
	case TooManyRequests:
		return http.StatusTooManyRequests
	case OTPDeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Code ErrorCode
	Msg  string
	Err  error
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ErrorCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
