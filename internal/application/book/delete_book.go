package book

import (
	"context"
	"log"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// DeleteBookUseCase 删除图书用例(管理员)
type DeleteBookUseCase struct {
	bookService book.Service
	bookCache   *redis.BookCache
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, bookCache *redis.BookCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		bookCache:   bookCache,
	}
}

// Execute 执行删除用例(软删除)
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	// 删除详情缓存
	if err := uc.bookCache.DeleteDetail(ctx, id); err != nil {
		log.Printf("删除图书缓存失败 book_id=%d: %v", id, err)
	}

	return nil
}
