package register

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/internal/otp"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, mailer Mailer) {
	service := NewRegisterService(db, otp.NewOTPService(db, mailer), mailer)
	h := &RegisterHandler{
		service: service,
	}
	r.POST("/signup", h.handle)
}
