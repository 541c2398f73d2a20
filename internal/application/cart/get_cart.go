package cart

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// GetCartUseCase 查询购物车用例
// 用户从未加购过时返回ErrCartNotFound(404),购物车不做懒创建
type GetCartUseCase struct {
	cartService cart.Service
	bookRepo    book.Repository
}

// NewGetCartUseCase 创建查询购物车用例
func NewGetCartUseCase(cartService cart.Service, bookRepo book.Repository) *GetCartUseCase {
	return &GetCartUseCase{
		cartService: cartService,
		bookRepo:    bookRepo,
	}
}

// Execute 执行查询
func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*CartView, error) {
	c, err := uc.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildCartView(ctx, uc.bookRepo, c)
}
