package cart

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// AddItemUseCase 加购用例
// 设计说明:
// 1. 图书存在性校验在application层(跨聚合查询)
// 2. 购物车懒创建、重复加购合并数量在领域服务内处理
type AddItemUseCase struct {
	cartService cart.Service
	bookRepo    book.Repository
}

// NewAddItemUseCase 创建加购用例
func NewAddItemUseCase(cartService cart.Service, bookRepo book.Repository) *AddItemUseCase {
	return &AddItemUseCase{
		cartService: cartService,
		bookRepo:    bookRepo,
	}
}

// AddItemRequest 加购请求DTO
type AddItemRequest struct {
	UserID   uint // 从JWT中提取
	BookID   uint
	Quantity int
}

// Execute 执行加购
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*CartView, error) {
	// 1. 校验图书存在(不存在→404)
	if _, err := uc.bookRepo.FindByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 2. 加购(懒创建购物车、合并数量)
	c, err := uc.cartService.AddItem(ctx, req.UserID, req.BookID, req.Quantity)
	if err != nil {
		return nil, err
	}

	// 3. 业务指标
	metrics.IncCounter(metrics.CartItemsAddedTotal)

	return buildCartView(ctx, uc.bookRepo, c)
}
