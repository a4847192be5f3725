package course

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := &CourseHandler{
		service: NewCourseService(NewCourseRepository(db)),
	}

	auth := middleware.JWTAuth(db)
	verified := middleware.VerifiedOnly()
	admin := middleware.AdminOnly()

	r.GET("", auth, verified, h.handleGetAll)
	r.GET("/:id", auth, verified, h.handleGet)
	r.POST("", auth, verified, admin, h.handleCreate)
	r.PUT("/:id", auth, verified, admin, h.handleUpdate)
	r.DELETE("/:id", auth, verified, admin, h.handleDelete)
}
