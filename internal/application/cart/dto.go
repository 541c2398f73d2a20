package cart

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// CartView 购物车视图DTO
// 条目附带图书快照信息(书名、当前单价),方便前端直接展示
type CartView struct {
	ID       uint           `json:"id"`
	UserID   uint           `json:"user_id"`
	Items    []CartItemView `json:"items"`
	Total    int64          `json:"total"` // 按当前价格估算的合计(分)
	ItemsNum int            `json:"items_num"`
}

// CartItemView 购物车条目视图DTO
type CartItemView struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title"`
	BookPrice int64  `json:"book_price"` // 当前单价(分),下单时以结算时点为准
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"` // 当前价格小计(分)
}

// buildCartView 组装购物车视图
// 图书已被删除的条目仍然展示(书名为空),结算时会校验并报错
func buildCartView(ctx context.Context, bookRepo book.Repository, c *cart.Cart) (*CartView, error) {
	items := make([]CartItemView, len(c.Items))
	var total int64

	for i, item := range c.Items {
		view := CartItemView{
			ID:       item.ID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}

		b, err := bookRepo.FindByID(ctx, item.BookID)
		if err == nil {
			view.BookTitle = b.Title
			view.BookPrice = b.Price
			view.Subtotal = b.Price * int64(item.Quantity)
			total += view.Subtotal
		}

		items[i] = view
	}

	return &CartView{
		ID:       c.ID,
		UserID:   c.UserID,
		Items:    items,
		Total:    total,
		ItemsNum: len(items),
	}, nil
}
