package cart

import (
	"context"
)

// Service 购物车领域服务接口
// 设计说明:
// 1. 所有操作以userID为第一身份参数,归属校验在此层完成
// 2. 图书是否存在的校验在application层完成(跨聚合查询)
type Service interface {
	// GetCart 获取用户购物车(包含条目)
	// 用户从未加购时返回ErrCartNotFound
	GetCart(ctx context.Context, userID uint) (*Cart, error)

	// AddItem 加购图书
	// 业务规则:
	// - 数量必须>=1
	// - 购物车不存在时懒创建
	// - 同一本书重复加购时合并数量
	AddItem(ctx context.Context, userID, bookID uint, quantity int) (*Cart, error)

	// UpdateItemQuantity 调整条目数量(增量语义)
	// delta加到当前数量上,结果必须>=1,否则返回ErrInvalidQuantity
	// 条目属于他人购物车时返回ErrCartAccessDenied
	UpdateItemQuantity(ctx context.Context, userID, itemID uint, delta int) (*CartItem, error)

	// RemoveItem 删除条目(归属校验同上)
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

type service struct {
	repo Repository
}

// NewService 创建购物车领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetCart 获取用户购物车
func (s *service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// AddItem 加购图书
func (s *service) AddItem(ctx context.Context, userID, bookID uint, quantity int) (*Cart, error) {
	// 1. 数量校验
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	// 2. 查找购物车,不存在则懒创建
	c, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if err != ErrCartNotFound {
			return nil, err
		}
		c = NewCart(userID)
		if err := s.repo.Create(ctx, c); err != nil {
			return nil, err
		}
	}

	// 3. 同一本书重复加购:合并数量;否则新增条目
	if existing := c.FindItemByBookID(bookID); existing != nil {
		newQuantity := existing.Quantity + quantity
		if err := s.repo.UpdateItemQuantity(ctx, existing.ID, newQuantity); err != nil {
			return nil, err
		}
	} else {
		item := &CartItem{
			CartID:   c.ID,
			BookID:   bookID,
			Quantity: quantity,
		}
		if err := s.repo.CreateItem(ctx, item); err != nil {
			return nil, err
		}
	}

	// 4. 返回最新的购物车
	return s.repo.FindByUserID(ctx, userID)
}

// UpdateItemQuantity 调整条目数量
func (s *service) UpdateItemQuantity(ctx context.Context, userID, itemID uint, delta int) (*CartItem, error) {
	// 1. 查找条目并校验归属
	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	// 2. 增量计算,结果必须>=1
	newQuantity := item.Quantity + delta
	if newQuantity < 1 {
		return nil, ErrInvalidQuantity
	}

	// 3. 持久化
	if err := s.repo.UpdateItemQuantity(ctx, itemID, newQuantity); err != nil {
		return nil, err
	}

	item.Quantity = newQuantity
	return item, nil
}

// RemoveItem 删除条目
func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if _, err := s.findOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, itemID)
}

// findOwnedItem 查找条目并校验归属
// 条目不存在→ErrCartItemNotFound;存在但属于他人→ErrCartAccessDenied
func (s *service) findOwnedItem(ctx context.Context, userID, itemID uint) (*CartItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, item.CartID)
	if err != nil {
		return nil, err
	}

	if !c.IsOwnedBy(userID) {
		return nil, ErrCartAccessDenied
	}

	return item, nil
}
