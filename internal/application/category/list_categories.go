package category

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

// GetCategoryUseCase 分类详情查询用例
type GetCategoryUseCase struct {
	categoryService category.Service
}

// NewGetCategoryUseCase 创建详情查询用例
func NewGetCategoryUseCase(categoryService category.Service) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryService: categoryService}
}

// Execute 执行详情查询
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uint) (*CategoryDetail, error) {
	c, err := uc.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryDetail(c), nil
}

// ListCategoriesUseCase 分类列表查询用例
// 分类数量有限,不分页
type ListCategoriesUseCase struct {
	categoryService category.Service
}

// NewListCategoriesUseCase 创建列表查询用例
func NewListCategoriesUseCase(categoryService category.Service) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryService: categoryService}
}

// Execute 执行列表查询
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]CategoryDetail, error) {
	categories, err := uc.categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryDetail, len(categories))
	for i, c := range categories {
		list[i] = *toCategoryDetail(c)
	}
	return list, nil
}

// ListCategoryBooksUseCase 查询分类下的图书用例
// 设计说明:先校验分类存在(不存在→404),再分页查询图书
type ListCategoryBooksUseCase struct {
	categoryService category.Service
	bookRepo        book.Repository
}

// NewListCategoryBooksUseCase 创建分类图书查询用例
func NewListCategoryBooksUseCase(categoryService category.Service, bookRepo book.Repository) *ListCategoryBooksUseCase {
	return &ListCategoryBooksUseCase{
		categoryService: categoryService,
		bookRepo:        bookRepo,
	}
}

// ListCategoryBooksRequest 分类图书查询请求DTO
type ListCategoryBooksRequest struct {
	CategoryID uint
	Page       int
	PageSize   int
}

// CategoryBookItem 分类图书列表项DTO
type CategoryBookItem struct {
	ID       uint   `json:"id"`
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"` // 价格(分)
	CoverURL string `json:"cover_url"`
}

// ListCategoryBooksResponse 分类图书查询响应DTO
type ListCategoryBooksResponse struct {
	Category *CategoryDetail    `json:"category"`
	List     []CategoryBookItem `json:"list"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Execute 执行分类图书查询
func (uc *ListCategoryBooksUseCase) Execute(ctx context.Context, req ListCategoryBooksRequest) (*ListCategoryBooksResponse, error) {
	// 1. 参数默认值
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	// 2. 校验分类存在
	c, err := uc.categoryService.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	// 3. 分页查询分类下的图书
	books, total, err := uc.bookRepo.ListByCategoryID(ctx, req.CategoryID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryBookItem, len(books))
	for i, b := range books {
		list[i] = CategoryBookItem{
			ID:       b.ID,
			ISBN:     b.ISBN,
			Title:    b.Title,
			Author:   b.Author,
			Price:    b.Price,
			CoverURL: b.CoverURL,
		}
	}

	return &ListCategoryBooksResponse{
		Category: toCategoryDetail(c),
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
