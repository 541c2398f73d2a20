package order

import (
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// OrderItemView 订单明细视图DTO
type OrderItemView struct {
	ID       uint  `json:"id"`
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // 行金额快照(分)
}

// OrderView 订单视图DTO
type OrderView struct {
	ID              uint            `json:"id"`
	OrderNo         string          `json:"order_no"`
	UserID          uint            `json:"user_id"`
	Total           int64           `json:"total"`
	TotalYuan       string          `json:"total_yuan"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItemView `json:"items"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// toOrderItemViews 领域明细 → 视图DTO
func toOrderItemViews(items []order.OrderItem) []OrderItemView {
	views := make([]OrderItemView, len(items))
	for i, item := range items {
		views[i] = OrderItemView{
			ID:       item.ID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return views
}

// toOrderView 领域实体 → 视图DTO
func toOrderView(o *order.Order) *OrderView {
	return &OrderView{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		Total:           o.Total,
		TotalYuan:       formatPrice(o.Total),
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		Items:           toOrderItemViews(o.Items),
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
