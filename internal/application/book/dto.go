package book

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
)

// BookDetail 图书详情DTO
// 各用例共用,避免每个文件重复定义相同的转换
type BookDetail struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Price       int64  `json:"price"` // 价格(分)
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	CategoryIDs []uint `json:"category_ids"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// BookListItem 列表项DTO(不含description,减少数据传输量)
type BookListItem struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Price       int64  `json:"price"` // 价格(分)
	CoverURL    string `json:"cover_url"`
	CategoryIDs []uint `json:"category_ids"`
	CreatedAt   string `json:"created_at"`
}

// toBookDetail 领域实体 → 详情DTO
func toBookDetail(b *book.Book) *BookDetail {
	return &BookDetail{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		CategoryIDs: b.CategoryIDs,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toBookListItems 领域实体列表 → 列表项DTO
func toBookListItems(books []*book.Book) []BookListItem {
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = BookListItem{
			ID:          b.ID,
			ISBN:        b.ISBN,
			Title:       b.Title,
			Author:      b.Author,
			Price:       b.Price,
			CoverURL:    b.CoverURL,
			CategoryIDs: b.CategoryIDs,
			CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return list
}

// normalizePage 分页参数默认值与范围限制
// page默认1;pageSize默认20,最大100
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
