package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. ISBN作为业务唯一标识(数据库层保证唯一性),创建后不可修改
// 4. CategoryIDs记录图书所属分类(多对多,只保存ID避免跨聚合引用)
type Book struct {
	ID          uint
	ISBN        string // ISBN号(国际标准书号),创建后不可变
	Title       string // 书名
	Author      string // 作者
	Price       int64  // 价格(单位:分,1元=100分)
	CoverURL    string // 封面图片URL
	Description string // 图书描述
	CategoryIDs []uint // 所属分类ID列表
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// isbn需调用方先验证格式;price必须>0
func NewBook(isbn, title, author string, price int64, coverURL, description string, categoryIDs []uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Price:       price,
		CoverURL:    coverURL,
		Description: description,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息
// 注意:ISBN不在可更新字段中(业务主键不可变)
func (b *Book) UpdateInfo(title, author, coverURL, description string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if coverURL != "" {
		b.CoverURL = coverURL
	}
	if description != "" {
		b.Description = description
	}
	b.UpdatedAt = time.Now()
}

// ReplaceCategories 替换图书所属分类
func (b *Book) ReplaceCategories(categoryIDs []uint) {
	b.CategoryIDs = categoryIDs
	b.UpdatedAt = time.Now()
}
