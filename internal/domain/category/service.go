package category

import (
	"context"
)

// Service 分类领域服务接口
type Service interface {
	// CreateCategory 创建分类
	CreateCategory(ctx context.Context, name, description string) (*Category, error)

	// GetCategoryByID 根据ID获取分类
	GetCategoryByID(ctx context.Context, id uint) (*Category, error)

	// UpdateCategory 更新分类信息
	UpdateCategory(ctx context.Context, id uint, name, description string) (*Category, error)

	// DeleteCategory 删除分类
	DeleteCategory(ctx context.Context, id uint) error

	// ListCategories 查询全部分类
	ListCategories(ctx context.Context) ([]*Category, error)

	// ValidateIDs 校验分类ID是否都存在(图书上架/更新时使用)
	ValidateIDs(ctx context.Context, ids []uint) error
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateCategory 创建分类
func (s *service) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	category := NewCategory(name, description)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategoryByID 根据ID获取分类
func (s *service) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateCategory 更新分类信息
func (s *service) UpdateCategory(ctx context.Context, id uint, name, description string) (*Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.UpdateInfo(name, description)

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory 删除分类
func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListCategories 查询全部分类
func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// ValidateIDs 校验分类ID是否都存在
func (s *service) ValidateIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	categories, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if len(categories) != len(uniqueIDs(ids)) {
		return ErrCategoryNotFound
	}

	return nil
}

// uniqueIDs ID去重
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}
