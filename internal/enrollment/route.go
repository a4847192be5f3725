package enrollment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := &EnrollmentHandler{
		service: NewEnrollmentService(NewEnrollmentRepository(db), db),
	}

	auth := middleware.JWTAuth(db)
	verified := middleware.VerifiedOnly()

	r.GET("", auth, verified, h.handleGetAll)
	r.GET("/:id", auth, verified, h.handleGet)
	r.POST("", auth, verified, h.handleCreate)
	r.PUT("/:id", auth, verified, h.handleUpdate)
	r.DELETE("/:id", auth, verified, h.handleDelete)
	r.POST("/:id/grades", auth, verified, middleware.AdminOnly(), h.handleRecordGrade)
}
