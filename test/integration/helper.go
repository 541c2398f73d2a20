package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试使用真实的服务进程(含MySQL/Redis),验证完整的API流程:
// Handler → UseCase → Service → Repository → Database
//
// 运行方式:
//   docker compose up -d && go run ./cmd/api &
//   go test -v ./test/integration/...
// 服务未启动时整个测试包自动跳过

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// BookData 图书响应数据
type BookData struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Price       int64  `json:"price"`
	CategoryIDs []uint `json:"category_ids"`
}

// CartData 购物车响应数据
type CartData struct {
	ID       uint           `json:"id"`
	UserID   uint           `json:"user_id"`
	Items    []CartItemData `json:"items"`
	Total    int64          `json:"total"`
	ItemsNum int            `json:"items_num"`
}

// CartItemData 购物车条目数据
type CartItemData struct {
	ID       uint  `json:"id"`
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Subtotal int64 `json:"subtotal"`
}

// OrderData 下单响应数据
type OrderData struct {
	OrderID   uint            `json:"order_id"`
	OrderNo   string          `json:"order_no"`
	Total     int64           `json:"total"`
	TotalYuan string          `json:"total_yuan"`
	Status    string          `json:"status"`
	Items     []OrderItemData `json:"items"`
}

// OrderItemData 订单明细数据
type OrderItemData struct {
	ID       uint  `json:"id"`
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
}

// RequireServer 检查服务是否可达,不可达时跳过当前测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// doJSON 发送带JSON body的请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	// 204无响应体
	if resp.StatusCode == http.StatusNoContent {
		return &Response{Code: 0}
	}

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// PatchJSON 发送PATCH请求
func PatchJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPatch, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成不重复的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.local", prefix, time.Now().UnixNano())
}

// GenerateTestISBN 生成不重复的13位测试ISBN
func GenerateTestISBN() string {
	return fmt.Sprintf("9%012d", time.Now().UnixNano()%1e12)
}

// RegisterAndLogin 注册新用户并返回Access Token
func RegisterAndLogin(t *testing.T, prefix string) (string, uint) {
	t.Helper()

	email := GenerateTestEmail(prefix)
	password := "Test1234"

	registerResp := PostJSON(t, BaseURL+"/auth/registration", map[string]string{
		"email":           email,
		"password":        password,
		"repeat_password": password,
		"nickname":        "集成测试用户",
	}, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	var registerData RegisterData
	require.NoError(t, json.Unmarshal(registerResp.Data, &registerData))

	loginResp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	require.NoError(t, json.Unmarshal(loginResp.Data, &loginData))

	return loginData.AccessToken, registerData.ID
}

// AdminLogin 以管理员身份登录
// 管理员账号由数据库初始化脚本创建,凭据可用环境变量覆盖;
// 登录失败时跳过当前测试(环境未准备管理员账号)
func AdminLogin(t *testing.T) string {
	t.Helper()

	email := os.Getenv("BOOKSHOP_TEST_ADMIN_EMAIL")
	if email == "" {
		email = "admin@bookshop.local"
	}
	password := os.Getenv("BOOKSHOP_TEST_ADMIN_PASSWORD")
	if password == "" {
		password = "Admin1234"
	}

	resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if resp.Code != 0 {
		t.Skipf("管理员账号不可用,跳过: %s", resp.Message)
	}

	var loginData LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &loginData))
	return loginData.AccessToken
}

// PublishTestBook 以管理员身份上架一本测试图书
func PublishTestBook(t *testing.T, adminToken string, price int64) *BookData {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"isbn":        GenerateTestISBN(),
		"title":       "集成测试图书",
		"author":      "集成测试作者",
		"price":       price,
		"description": "集成测试用",
	}, adminToken)
	require.Equal(t, 0, resp.Code, "上架图书失败: %s", resp.Message)

	var book BookData
	require.NoError(t, json.Unmarshal(resp.Data, &book))
	return &book
}
