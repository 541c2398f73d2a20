package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// PublishBookUseCase 上架图书用例(管理员)
// 设计说明:
// 1. 跨聚合校验(分类是否存在)在application层编排
// 2. ISBN格式、价格范围等单聚合规则在领域服务内校验
type PublishBookUseCase struct {
	bookService     book.Service
	categoryService category.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service, categoryService category.Service) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService:     bookService,
		categoryService: categoryService,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Price       int64 // 价格(分)
	CoverURL    string
	Description string
	CategoryIDs []uint
}

// Execute 执行上架用例
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookDetail, error) {
	// 1. 校验分类ID是否都存在(跨聚合)
	if err := uc.categoryService.ValidateIDs(ctx, req.CategoryIDs); err != nil {
		return nil, err
	}

	// 2. 调用领域服务上架
	b, err := uc.bookService.PublishBook(ctx, req.ISBN, req.Title, req.Author,
		req.Price, req.CoverURL, req.Description, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	// 3. 业务指标
	metrics.IncCounter(metrics.BooksPublishedTotal)

	return toBookDetail(b), nil
}
