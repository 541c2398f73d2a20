package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 设计说明:
// 1. Cart和CartItem是聚合关系,查询时Preload条目
// 2. Clear参与结算事务,所有方法统一通过getDB取事务DB
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 创建购物车(懒创建)
func (r *cartRepository) Create(ctx context.Context, c *cart.Cart) error {
	model := &CartModel{
		UserID: c.UserID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找购物车(包含条目)
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartEntity(&model), nil
}

// FindByUserID 根据用户ID查找购物车(包含条目)
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).Preload("Items").Where("user_id = ?", userID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartEntity(&model), nil
}

// FindItemByID 根据ID查找购物车条目
func (r *cartRepository) FindItemByID(ctx context.Context, itemID uint) (*cart.CartItem, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).First(&model, itemID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	item := toCartItemEntity(&model)
	return &item, nil
}

// CreateItem 新增购物车条目
func (r *cartRepository) CreateItem(ctx context.Context, item *cart.CartItem) error {
	model := &CartItemModel{
		CartID:   item.CartID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加购物车条目失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt

	return nil
}

// UpdateItemQuantity 更新条目数量
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	result := getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}

	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem 删除条目
func (r *cartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	result := getDB(ctx, r.db).Delete(&CartItemModel{}, itemID)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}

	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}

	return nil
}

// Clear 清空购物车的全部条目
// 结算事务中调用,购物车本身保留
func (r *cartRepository) Clear(ctx context.Context, cartID uint) error {
	err := getDB(ctx, r.db).Where("cart_id = ?", cartID).Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toCartEntity GORM模型 → 领域实体
func toCartEntity(model *CartModel) *cart.Cart {
	items := make([]cart.CartItem, len(model.Items))
	for i := range model.Items {
		items[i] = toCartItemEntity(&model.Items[i])
	}

	return &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// toCartItemEntity GORM模型 → 领域实体
func toCartItemEntity(model *CartItemModel) cart.CartItem {
	return cart.CartItem{
		ID:        model.ID,
		CartID:    model.CartID,
		BookID:    model.BookID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
