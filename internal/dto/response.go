package dto

import (
	"log"

	"github.com/gin-gonic/gin"

	res "terminal-terrace/enroll-service/pkg/response"
)

func SuccessResponse(c *gin.Context, data any) {
	body := res.SuccessResponse(data)
	c.JSON(body.StatusCode, body)
}

func CreatedResponse(c *gin.Context, data any) {
	body := res.CreatedResponse(data)
	c.JSON(body.StatusCode, body)
}

// ErrorResponse 业务错误统一出口
// 内部错误细节只落日志, 不回传给客户端
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	if err.Err != nil {
		log.Printf("[%s %s] 内部错误: %v", c.Request.Method, c.Request.URL.Path, err.Err)
	}
	body := res.ErrorResponse(err.Code, err.Msg)
	c.JSON(body.StatusCode, body)
}
