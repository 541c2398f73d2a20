package user

import (
	"time"
)

// Role 用户角色
// 设计说明：普通用户只能操作自己的购物车和订单，管理员才能维护
// 图书目录和修改订单状态
type Role string

const (
	RoleUser  Role = "user"  // 普通用户
	RoleAdmin Role = "admin" // 管理员
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，包含用户的核心属性
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID              uint
	Email           string
	Password        string // bcrypt哈希值
	Nickname        string
	Role            Role
	ShippingAddress string // 默认收货地址
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码；角色固定为普通用户，
// 管理员通过初始化脚本创建，不走注册流程
func NewUser(email, hashedPassword, nickname, shippingAddress string) *User {
	now := time.Now()
	return &User{
		Email:           email,
		Password:        hashedPassword,
		Nickname:        nickname,
		Role:            RoleUser,
		ShippingAddress: shippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateNickname 更新昵称（领域行为）
func (u *User) UpdateNickname(nickname string) {
	u.Nickname = nickname
	u.UpdatedAt = time.Now()
}

// UpdateShippingAddress 更新默认收货地址
func (u *User) UpdateShippingAddress(address string) {
	u.ShippingAddress = address
	u.UpdatedAt = time.Now()
}
