package category

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/category"
)

// CreateCategoryUseCase 创建分类用例(管理员)
type CreateCategoryUseCase struct {
	categoryService category.Service
}

// NewCreateCategoryUseCase 创建分类用例
func NewCreateCategoryUseCase(categoryService category.Service) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryService: categoryService}
}

// CreateCategoryRequest 创建分类请求DTO
type CreateCategoryRequest struct {
	Name        string
	Description string
}

// Execute 执行创建分类
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateCategoryRequest) (*CategoryDetail, error) {
	c, err := uc.categoryService.CreateCategory(ctx, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return toCategoryDetail(c), nil
}

// =========================================
// 应用层DTO
// =========================================

// CategoryDetail 分类详情DTO
type CategoryDetail struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// toCategoryDetail 领域实体 → DTO
func toCategoryDetail(c *category.Category) *CategoryDetail {
	return &CategoryDetail{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
