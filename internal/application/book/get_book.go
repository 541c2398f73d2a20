package book

import (
	"context"
	"log"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// GetBookUseCase 图书详情查询用例
// 设计说明:Cache-Aside模式
// 1. 先查Redis缓存,命中直接返回
// 2. 未命中查数据库,回填缓存
// 3. 缓存读写失败都不影响主流程(降级为直接查库)
type GetBookUseCase struct {
	bookService book.Service
	bookCache   *redis.BookCache
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, bookCache *redis.BookCache) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		bookCache:   bookCache,
	}
}

// Execute 执行详情查询用例
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	// 1. 查缓存
	cached, err := uc.bookCache.GetDetail(ctx, id)
	if err != nil {
		log.Printf("读取图书缓存失败 book_id=%d: %v", id, err)
	}
	if cached != nil {
		return toBookDetail(cached), nil
	}

	// 2. 缓存未命中,查数据库
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if err := uc.bookCache.SetDetail(ctx, b); err != nil {
		log.Printf("写入图书缓存失败 book_id=%d: %v", id, err)
	}

	return toBookDetail(b), nil
}
