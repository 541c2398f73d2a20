package category

import (
	"context"
)

// Repository 分类仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建分类
	// 名称重复时返回ErrNameDuplicate
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByIDs 批量查找分类(用于校验图书的分类ID是否都存在)
	FindByIDs(ctx context.Context, ids []uint) ([]*Category, error)

	// Update 更新分类信息
	Update(ctx context.Context, category *Category) error

	// Delete 删除分类(软删除)
	Delete(ctx context.Context, id uint) error

	// List 查询全部分类
	List(ctx context.Context) ([]*Category, error)
}
