package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 业务规则：所有接口只操作当前登录用户自己的购物车（user_id取自JWT）
type CartHandler struct {
	getUseCase    *appcart.GetCartUseCase
	addUseCase    *appcart.AddItemUseCase
	updateUseCase *appcart.UpdateItemUseCase
	removeUseCase *appcart.RemoveItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	getUseCase *appcart.GetCartUseCase,
	addUseCase *appcart.AddItemUseCase,
	updateUseCase *appcart.UpdateItemUseCase,
	removeUseCase *appcart.RemoveItemUseCase,
) *CartHandler {
	return &CartHandler{
		getUseCase:    getUseCase,
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
	}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  返回当前用户购物车；从未加购时返回空购物车视图，不落库
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.getUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  首次加购自动创建购物车；重复加购同一本书时数量合并
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "加购信息"
// @Success      200 {object} response.Response "加购成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		UserID:   userID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateItem 调整明细数量
// @Summary      调整明细数量
// @Description  按增量调整（delta可为负），结果必须≥1；他人明细返回403
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "明细ID"
// @Param        request body dto.UpdateCartItemRequest true "数量增量"
// @Success      200 {object} response.Response "调整成功"
// @Failure      400 {object} response.Response "调整后数量小于1"
// @Failure      403 {object} response.Response "无权操作该明细"
// @Failure      404 {object} response.Response "明细不存在"
// @Router       /api/v1/cart/cart-items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appcart.UpdateItemRequest{
		UserID: userID,
		ItemID: itemID,
		Delta:  req.Delta,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveItem 删除明细
// @Summary      删除明细
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "明细ID"
// @Success      204 "删除成功"
// @Failure      403 {object} response.Response "无权操作该明细"
// @Failure      404 {object} response.Response "明细不存在"
// @Router       /api/v1/cart/cart-items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), userID, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
