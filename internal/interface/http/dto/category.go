package dto

// CreateCategoryRequest HTTP创建分类请求(管理员)
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50" example:"计算机"`
	Description string `json:"description" binding:"omitempty,max=500" example:"计算机与编程类图书"`
}

// UpdateCategoryRequest HTTP更新分类请求(管理员)
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// ListCategoryBooksRequest 分类下图书列表请求
type ListCategoryBooksRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
