package route

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/config"
	"terminal-terrace/enroll-service/internal/course"
	"terminal-terrace/enroll-service/internal/enrollment"
	"terminal-terrace/enroll-service/internal/login"
	"terminal-terrace/enroll-service/internal/middleware"
	"terminal-terrace/enroll-service/internal/otp"
	"terminal-terrace/enroll-service/internal/register"
	"terminal-terrace/enroll-service/internal/user"
	"terminal-terrace/enroll-service/pkg/email"
)

func initRoute(r *gin.Engine, db *gorm.DB, rdb redis.Cmdable) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "Backend Connected Successfully"})
	})

	mailer := email.NewClient(&config.Conf.Smtp)

	// 登录/注册入口限流
	limit := config.Conf.RateLimit.Max
	if limit == 0 {
		limit = 100
	}
	window := time.Duration(config.Conf.RateLimit.Window) * time.Second
	if window == 0 {
		window = time.Hour
	}
	rateLimit := middleware.RateLimit(rdb, limit, window)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth", rateLimit)
		login.RegisterRoutes(authGroup, db)
		register.RegisterRoutes(authGroup, db, mailer)
		otp.RegisterRoutes(authGroup, db, mailer)

		user.RegisterRoutes(apiV1, db)
		enrollment.RegisterRoutes(apiV1.Group("/enroll"), db)
		course.RegisterRoutes(apiV1.Group("/course"), db)
	}
}

func SetupRouter(db *gorm.DB, rdb redis.Cmdable) *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// 允许的前端来源
	allowedOrigins := []string{
		"http://localhost:3000",
	}
	if envOrigin := config.Conf.Cors.AllowedOrigin; envOrigin != "" {
		allowedOrigins = append(allowedOrigins, envOrigin)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db, rdb)

	return r
}
