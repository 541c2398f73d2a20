package category

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameRequired 分类名称不能为空
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")

	// ErrNameDuplicate 分类名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类名称已存在")
)
