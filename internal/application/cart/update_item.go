package cart

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// UpdateItemUseCase 调整购物车条目数量用例
// 增量语义:delta加到当前数量,结果必须>=1
// 归属校验在领域服务内:他人条目→403,不存在→404
type UpdateItemUseCase struct {
	cartService cart.Service
}

// NewUpdateItemUseCase 创建调整数量用例
func NewUpdateItemUseCase(cartService cart.Service) *UpdateItemUseCase {
	return &UpdateItemUseCase{cartService: cartService}
}

// UpdateItemRequest 调整数量请求DTO
type UpdateItemRequest struct {
	UserID uint // 从JWT中提取
	ItemID uint
	Delta  int // 数量增量(可为负)
}

// UpdateItemResponse 调整数量响应DTO
type UpdateItemResponse struct {
	ID       uint `json:"id"`
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// Execute 执行调整数量
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) (*UpdateItemResponse, error) {
	item, err := uc.cartService.UpdateItemQuantity(ctx, req.UserID, req.ItemID, req.Delta)
	if err != nil {
		return nil, err
	}

	return &UpdateItemResponse{
		ID:       item.ID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}, nil
}

// RemoveItemUseCase 删除购物车条目用例
// 归属校验同UpdateItemUseCase
type RemoveItemUseCase struct {
	cartService cart.Service
}

// NewRemoveItemUseCase 创建删除条目用例
func NewRemoveItemUseCase(cartService cart.Service) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartService: cartService}
}

// Execute 执行删除
func (uc *RemoveItemUseCase) Execute(ctx context.Context, userID, itemID uint) error {
	return uc.cartService.RemoveItem(ctx, userID, itemID)
}
