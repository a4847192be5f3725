package otp

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, mailer Mailer) {
	h := &OTPHandler{
		service: NewOTPService(db, mailer),
	}

	// 验证相关路由只要求令牌有效, 不要求已验证
	r.POST("/request-otp", middleware.JWTAuth(db), h.handleRequest)
	r.POST("/validate-otp", middleware.JWTAuth(db), h.handleValidate)
}
