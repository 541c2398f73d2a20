package book

import (
	"context"
	"log"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// UpdateBookUseCase 更新图书用例(管理员)
// 设计说明:更新成功后删除详情缓存(而非更新缓存),
// 下次查询时重新加载最新数据
type UpdateBookUseCase struct {
	bookService     book.Service
	categoryService category.Service
	bookCache       *redis.BookCache
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, categoryService category.Service, bookCache *redis.BookCache) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService:     bookService,
		categoryService: categoryService,
		bookCache:       bookCache,
	}
}

// UpdateBookRequest 更新请求DTO
// 注意:没有ISBN字段,业务主键创建后不可修改
type UpdateBookRequest struct {
	ID          uint
	Title       string
	Author      string
	Price       int64  // 0表示不修改
	CoverURL    string
	Description string
	CategoryIDs []uint // nil表示不修改
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDetail, error) {
	// 1. 校验分类ID(跨聚合)
	if req.CategoryIDs != nil {
		if err := uc.categoryService.ValidateIDs(ctx, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	// 2. 调用领域服务更新
	b, err := uc.bookService.UpdateBook(ctx, req.ID, req.Title, req.Author,
		req.Price, req.CoverURL, req.Description, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	// 3. 删除详情缓存(缓存失效失败不影响主流程)
	if err := uc.bookCache.DeleteDetail(ctx, req.ID); err != nil {
		log.Printf("删除图书缓存失败 book_id=%d: %v", req.ID, err)
	}

	return toBookDetail(b), nil
}
