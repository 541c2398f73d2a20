package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AuthMiddleware 认证中间件
// 设计说明：
// 1. 从Authorization头提取Bearer Token
// 2. 检查Token是否在黑名单（已登出的Token拒绝访问）
// 3. 解析JWT，将用户身份注入gin.Context供后续Handler使用
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 强制认证
// 未携带Token或Token无效时中断请求，返回401
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			response.ErrorWithCode(c, 40100, "未提供认证信息")
			c.Abort()
			return
		}

		// 已登出的Token在黑名单中
		// 黑名单查询失败时拒绝请求:放行会让已登出的Token在剩余有效期内继续可用
		blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.ErrorWithCode(c, 50000, "验证Token失败")
			c.Abort()
			return
		}
		if blacklisted {
			response.ErrorWithCode(c, 40102, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		// 注入用户身份，Handler通过GetUserID/GetRole读取
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)

		c.Next()
	}
}

// RequireAdmin 管理员权限校验
// 业务规则：目录写操作、订单状态变更仅管理员可执行
// 必须在RequireAuth之后使用（依赖Context中的role）
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != "admin" {
			response.ErrorWithCode(c, 40300, "该操作需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken 从Authorization头提取Bearer Token
func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}

// GetUserID 从Context获取当前登录用户ID
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetEmail 从Context获取当前登录用户邮箱
func GetEmail(c *gin.Context) string {
	if v, exists := c.Get("email"); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

// GetRole 从Context获取当前登录用户角色
func GetRole(c *gin.Context) string {
	if v, exists := c.Get("role"); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// GetToken 从Context获取原始Token（登出时加入黑名单用）
func GetToken(c *gin.Context) string {
	if v, exists := c.Get("token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// MustGetUserID 获取当前登录用户ID，未登录时panic
// 仅在RequireAuth保护的路由内使用
func MustGetUserID(c *gin.Context) uint {
	id := GetUserID(c)
	if id == 0 {
		panic("middleware: user_id not found in context, RequireAuth missing?")
	}
	return id
}
