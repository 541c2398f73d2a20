package cart

import (
	"context"
)

// Repository 购物车仓储接口(依赖倒置原则)
// 设计说明:
// 1. 查询方法均预加载条目,Cart作为完整聚合返回
// 2. Clear在结算事务中调用,必须支持context传递事务
type Repository interface {
	// Create 创建购物车(懒创建时调用)
	Create(ctx context.Context, cart *Cart) error

	// FindByID 根据ID查找购物车(包含条目)
	FindByID(ctx context.Context, id uint) (*Cart, error)

	// FindByUserID 根据用户ID查找购物车(包含条目)
	// 用户从未加购时返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// FindItemByID 根据ID查找购物车条目
	FindItemByID(ctx context.Context, itemID uint) (*CartItem, error)

	// CreateItem 新增购物车条目
	CreateItem(ctx context.Context, item *CartItem) error

	// UpdateItemQuantity 更新条目数量
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error

	// DeleteItem 删除条目
	DeleteItem(ctx context.Context, itemID uint) error

	// Clear 清空购物车的全部条目(结算后调用,购物车本身保留)
	Clear(ctx context.Context, cartID uint) error
}
