package book

import (
	"context"
	"regexp"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 权限校验(管理员才能增删改)在HTTP中间件层完成,不在此层重复
type Service interface {
	// PublishBook 上架图书
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - 价格必须在1-99999999分之间
	// - 书名、作者必填
	// - ISBN不能重复
	PublishBook(ctx context.Context, isbn, title, author string, price int64, coverURL, description string, categoryIDs []uint) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// UpdateBook 更新图书信息(不含ISBN)
	UpdateBook(ctx context.Context, id uint, title, author string, price int64, coverURL, description string, categoryIDs []uint) (*Book, error)

	// DeleteBook 删除图书(软删除)
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 按书名/作者集合搜索
	SearchBooks(ctx context.Context, params SearchParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishBook 上架图书
func (s *service) PublishBook(ctx context.Context, isbn, title, author string, price int64, coverURL, description string, categoryIDs []uint) (*Book, error) {
	// 1. ISBN格式校验
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	// 2. 必填字段校验
	if title == "" {
		return nil, ErrTitleRequired
	}
	if author == "" {
		return nil, ErrAuthorRequired
	}

	// 3. 价格范围校验(1分-999999.99元)
	if price < 1 || price > 99999999 {
		return nil, ErrInvalidPrice
	}

	// 4. 创建图书实体
	// ISBN唯一性由数据库唯一索引保证,Repository转换重复错误
	book := NewBook(isbn, title, author, price, coverURL, description, categoryIDs)

	// 5. 持久化
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	return s.repo.FindByISBN(ctx, isbn)
}

// UpdateBook 更新图书信息
// 业务规则:ISBN不可修改(不在参数中);价格传0表示不修改
func (s *service) UpdateBook(ctx context.Context, id uint, title, author string, price int64, coverURL, description string, categoryIDs []uint) (*Book, error) {
	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新基本信息
	book.UpdateInfo(title, author, coverURL, description)

	// 3. 更新价格(传0表示保持不变)
	if price != 0 {
		if price < 1 || price > 99999999 {
			return nil, ErrInvalidPrice
		}
		if err := book.UpdatePrice(price); err != nil {
			return nil, err
		}
	}

	// 4. 替换分类关联(nil表示保持不变)
	if categoryIDs != nil {
		book.ReplaceCategories(categoryIDs)
	}

	// 5. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	// 先确认存在,保证删除不存在的图书返回404而非静默成功
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// SearchBooks 按条件搜索图书
// 未提供任何条件时等价于全量列表查询
func (s *service) SearchBooks(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	return s.repo.Search(ctx, params)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// isValidISBN 校验ISBN格式
// 支持:
// - ISBN-10: 10位数字
// - ISBN-13: 13位数字,如9787115428028
// 简化实现:只检查位数和是否全为数字(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	// 去除可能的分隔符(如978-7-115-42802-8 → 9787115428028)
	re := regexp.MustCompile(`[^0-9]`)
	cleanISBN := re.ReplaceAllString(isbn, "")

	length := len(cleanISBN)
	return length == 10 || length == 13
}
