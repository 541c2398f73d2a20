package dto

// CreateOrderRequest HTTP下单请求
// 订单内容来自当前用户的购物车，请求体只携带收货地址
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=500"`
}

// UpdateOrderStatusRequest HTTP订单状态变更请求(管理员)
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PAID"`
}

// ListOrdersRequest HTTP订单列表请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
