package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraredis "github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/response"
)

// newAuthTestRouter 构造带RequireAuth保护路由的测试引擎
// Redis地址指向不可达端口,模拟黑名单存储故障
func newAuthTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		ReadTimeout: 50 * time.Millisecond,
	})
	sessionStore := infraredis.NewSessionStore(client)

	m := NewAuthMiddleware(jwtManager, sessionStore)

	r := gin.New()
	r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		response.Success(c, gin.H{"user_id": GetUserID(c)})
	})
	return r, jwtManager
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestRequireAuth(t *testing.T) {
	r, jwtManager := newAuthTestRouter(t)

	t.Run("未携带Token返回401", func(t *testing.T) {
		w := doProtected(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 40100, decodeCode(t, w))
	})

	t.Run("非Bearer格式返回401", func(t *testing.T) {
		w := doProtected(r, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 40100, decodeCode(t, w))
	})

	t.Run("黑名单存储不可用时拒绝请求", func(t *testing.T) {
		// 不能因为黑名单查不到就放行:
		// 已登出的Token会在剩余有效期内继续可用
		pair, err := jwtManager.GenerateToken(1, "user@example.com", "user")
		require.NoError(t, err)

		w := doProtected(r, "Bearer "+pair.AccessToken)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 50000, decodeCode(t, w))
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			// 模拟RequireAuth注入的身份
			c.Set("user_id", uint(1))
			c.Set("role", role)
		}, (&AuthMiddleware{}).RequireAdmin(), func(c *gin.Context) {
			response.Success(c, nil)
		})
		return r
	}

	t.Run("管理员放行", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		newRouter("admin").ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("普通用户返回403", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		newRouter("user").ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 40300, decodeCode(t, w))
	})
}
