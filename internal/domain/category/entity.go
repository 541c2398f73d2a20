package category

import (
	"time"
)

// Category 图书分类实体
// 设计说明:
// 1. 与Book是多对多关系(一本书可属于多个分类)
// 2. 关联关系由book聚合维护,Category只描述分类本身
type Category struct {
	ID          uint
	Name        string // 分类名称
	Description string // 分类描述
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建新分类(工厂方法)
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新分类信息
func (c *Category) UpdateInfo(name, description string) {
	if name != "" {
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
	c.UpdatedAt = time.Now()
}
