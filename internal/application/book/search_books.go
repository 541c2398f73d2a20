package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 设计说明:
// 1. 按书名集合、作者集合搜索,条件之间取交集
// 2. 未提供任何条件时退化为全量列表
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
// Titles/Authors来自query参数(可重复,如?title=a&title=b)
type SearchBooksRequest struct {
	Titles   []string
	Authors  []string
	Page     int
	PageSize int
}

// SearchBooksResponse 搜索响应DTO
type SearchBooksResponse struct {
	List     []BookListItem `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Execute 执行搜索用例
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*SearchBooksResponse, error) {
	req.Page, req.PageSize = normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookService.SearchBooks(ctx, book.SearchParams{
		Titles:   req.Titles,
		Authors:  req.Authors,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &SearchBooksResponse{
		List:     toBookListItems(books),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
