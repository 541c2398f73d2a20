package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// GetOrderItemsUseCase 查询订单明细列表用例
// 归属规则:订单必须属于当前用户,否则403;订单不存在404
type GetOrderItemsUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderItemsUseCase 创建明细列表用例
func NewGetOrderItemsUseCase(orderRepo order.Repository) *GetOrderItemsUseCase {
	return &GetOrderItemsUseCase{orderRepo: orderRepo}
}

// Execute 执行明细列表查询
func (uc *GetOrderItemsUseCase) Execute(ctx context.Context, userID, orderID uint) ([]OrderItemView, error) {
	o, err := findOwnedOrder(ctx, uc.orderRepo, userID, orderID)
	if err != nil {
		return nil, err
	}

	return toOrderItemViews(o.Items), nil
}

// GetOrderItemUseCase 查询单条订单明细用例
// 归属规则同上;明细必须属于该订单,否则404
type GetOrderItemUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderItemUseCase 创建单条明细用例
func NewGetOrderItemUseCase(orderRepo order.Repository) *GetOrderItemUseCase {
	return &GetOrderItemUseCase{orderRepo: orderRepo}
}

// Execute 执行单条明细查询
func (uc *GetOrderItemUseCase) Execute(ctx context.Context, userID, orderID, itemID uint) (*OrderItemView, error) {
	o, err := findOwnedOrder(ctx, uc.orderRepo, userID, orderID)
	if err != nil {
		return nil, err
	}

	// 明细必须属于该订单(用别的订单的itemID查→404)
	item := o.FindItemByID(itemID)
	if item == nil {
		return nil, order.ErrOrderItemNotFound
	}

	return &OrderItemView{
		ID:       item.ID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
		Price:    item.Price,
	}, nil
}

// findOwnedOrder 查询订单并校验归属
// 不存在→ErrOrderNotFound(404);他人订单→ErrOrderAccessDenied(403)
func findOwnedOrder(ctx context.Context, repo order.Repository, userID, orderID uint) (*order.Order, error) {
	o, err := repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderAccessDenied
	}

	return o, nil
}
