package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	// ISBN重复时返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书(包含分类关联)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息(包含分类关联的替换)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 按书名集合、作者集合搜索(条件之间取交集)
	// 未提供的条件不参与过滤
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// ListByCategoryID 分页查询某分类下的图书
	ListByCategoryID(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	SortBy   string // 排序字段(price_asc, price_desc, created_at_desc)
}

// SearchParams 搜索参数
// Titles/Authors为集合匹配:书名在Titles中 且 作者在Authors中
type SearchParams struct {
	Titles   []string // 书名集合(空则不过滤)
	Authors  []string // 作者集合(空则不过滤)
	Page     int
	PageSize int
}
