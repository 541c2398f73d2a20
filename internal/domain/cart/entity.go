package cart

import (
	"time"
)

// Cart 购物车实体(聚合根)
// 设计说明:
// 1. 每个用户最多一个购物车(user_id唯一索引),首次加购时才创建(懒创建)
// 2. CartItem是聚合内的子实体,必须通过Cart访问
// 3. 结算后只清空条目,购物车本身不删除
type Cart struct {
	ID        uint
	UserID    uint
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem 购物车条目
// 同一购物车内每本书最多一条记录((cart_id, book_id)唯一),
// 重复加购合并数量
type CartItem struct {
	ID        uint
	CartID    uint
	BookID    uint
	Quantity  int // 始终>=1
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart 创建新购物车(工厂方法)
func NewCart(userID uint) *Cart {
	now := time.Now()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy 检查购物车是否属于指定用户
func (c *Cart) IsOwnedBy(userID uint) bool {
	return c.UserID == userID
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItemByBookID 查找购物车中指定图书的条目
func (c *Cart) FindItemByBookID(bookID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			return &c.Items[i]
		}
	}
	return nil
}
