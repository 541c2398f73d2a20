package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=999"`
}

// UpdateCartItemRequest HTTP购物车明细数量调整请求
// delta为增量：正数增加、负数减少；调整后数量必须≥1，否则返回参数错误
// 注意binding不加min校验，负数delta是合法输入
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}
