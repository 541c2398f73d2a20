package cart

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在(用户从未加购)
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")

	// ErrCartItemNotFound 购物车条目不存在
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")

	// ErrCartAccessDenied 操作他人购物车的条目
	// 注意:条目存在但属于别人时返回403而非404
	ErrCartAccessDenied = apperrors.New(apperrors.ErrCodeOwnershipDenied, "无权操作此购物车条目")

	// ErrInvalidQuantity 数量不合法(加购数量或调整后的数量必须>=1)
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "商品数量必须大于0")
)
