package login

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := &LoginHandler{
		service: NewLoginService(db),
	}
	r.POST("/login", h.handle)
}
