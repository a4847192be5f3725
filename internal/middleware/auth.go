package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/enroll-service/internal/dto"
	userModel "terminal-terrace/enroll-service/internal/model/user"
	"terminal-terrace/enroll-service/internal/pkg"
	"terminal-terrace/enroll-service/pkg/response"
)

const userContextKey = "current_user"

// extractBearerToken 从 Authorization header 中提取 token
func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("未提供认证令牌")
	}

	// 验证格式: Bearer <token>
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:], nil
	}
	return "", fmt.Errorf("认证格式错误")
}

// JWTAuth JWT 认证中间件
// 解析令牌后从数据库重新加载用户, 令牌中的角色/验证状态只作参考,
// 以数据库当前值为准, 避免令牌签发后权限变化仍然生效
func JWTAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.InvalidToken),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccessToken(tokenString)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.InvalidToken),
				response.WithErrorMessage("无效或已过期的认证令牌"),
			))
			c.Abort()
			return
		}

		var currentUser userModel.User
		if err := db.First(&currentUser, "id = ?", claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				dto.ErrorResponse(c, response.NewBusinessError(
					response.WithErrorCode(response.InvalidToken),
					response.WithErrorMessage("用户不存在"),
				))
			} else {
				dto.ErrorResponse(c, response.NewBusinessError(
					response.WithErrorCode(response.Fail),
					response.WithErrorMessage("查询用户失败"),
					response.WithError(err),
				))
			}
			c.Abort()
			return
		}

		// 将用户信息存入上下文, 后续 handler 无需再查库
		c.Set(userContextKey, &currentUser)
		c.Next()
	}
}

// CurrentUser 从上下文中取出认证用户
func CurrentUser(c *gin.Context) (*userModel.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	currentUser, ok := value.(*userModel.User)
	return currentUser, ok
}

// VerifiedOnly 邮箱验证门禁, 必须在 JWTAuth 之后使用
func VerifiedOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentUser, ok := CurrentUser(c)
		if !ok {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.InvalidToken),
				response.WithErrorMessage("未提供认证令牌"),
			))
			c.Abort()
			return
		}

		if !currentUser.IsVerified {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.NotVerified),
				response.WithErrorMessage("邮箱未验证, 禁止访问"),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly 管理员门禁, 必须在 JWTAuth 之后使用
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentUser, ok := CurrentUser(c)
		if !ok || currentUser.Role != userModel.RoleAdmin {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("仅限管理员操作"),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnerOnly 本人门禁, 路径参数指向的用户必须是当前认证用户
func OwnerOnly(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentUser, ok := CurrentUser(c)
		if !ok || currentUser.ID != c.Param(param) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("只能操作本人账号"),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}
