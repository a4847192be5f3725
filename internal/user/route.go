package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := &UserHandler{
		service: NewUserService(NewUserRepository(db)),
	}

	auth := middleware.JWTAuth(db)
	verified := middleware.VerifiedOnly()

	r.GET("/users", auth, verified, h.handleGetAll)
	r.GET("/user/:id", auth, verified, h.handleGet)
	r.PUT("/update-user/:id", auth, verified, middleware.OwnerOnly("id"), h.handleUpdate)
	r.DELETE("/delete-user/:id", auth, verified, middleware.AdminOnly(), h.handleDelete)
}
