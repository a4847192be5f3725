package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"terminal-terrace/enroll-service/internal/dto"
	"terminal-terrace/enroll-service/pkg/response"
)

const rateLimitKeyPrefix = "enroll:ratelimit:"

// RateLimit 固定窗口限流中间件, 以客户端 IP 为维度
// 计数器存 Redis, 窗口由第一次请求的 EXPIRE 界定
// Redis 不可用时放行, 限流是保护措施而不是功能依赖
func RateLimit(rdb redis.Cmdable, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(max) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.TooManyRequests),
				response.WithErrorMessage(fmt.Sprintf("请求过于频繁, 请 %d 分钟后再试", int(window.Minutes()))),
			))
			c.Abort()
			return
		}

		c.Next()
	}
}
