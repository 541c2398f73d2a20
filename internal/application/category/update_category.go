package category

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/category"
)

// UpdateCategoryUseCase 更新分类用例(管理员)
type UpdateCategoryUseCase struct {
	categoryService category.Service
}

// NewUpdateCategoryUseCase 创建更新分类用例
func NewUpdateCategoryUseCase(categoryService category.Service) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryService: categoryService}
}

// UpdateCategoryRequest 更新分类请求DTO
type UpdateCategoryRequest struct {
	ID          uint
	Name        string
	Description string
}

// Execute 执行更新分类
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateCategoryRequest) (*CategoryDetail, error) {
	c, err := uc.categoryService.UpdateCategory(ctx, req.ID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return toCategoryDetail(c), nil
}

// DeleteCategoryUseCase 删除分类用例(管理员)
type DeleteCategoryUseCase struct {
	categoryService category.Service
}

// NewDeleteCategoryUseCase 创建删除分类用例
func NewDeleteCategoryUseCase(categoryService category.Service) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryService: categoryService}
}

// Execute 执行删除分类(软删除,图书与分类的关联保留在连接表中)
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	return uc.categoryService.DeleteCategory(ctx, id)
}
