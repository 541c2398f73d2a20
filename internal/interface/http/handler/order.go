package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createUseCase       *apporder.CreateOrderUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
	listUseCase         *apporder.ListOrdersUseCase
	itemsUseCase        *apporder.GetOrderItemsUseCase
	itemUseCase         *apporder.GetOrderItemUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createUseCase *apporder.CreateOrderUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
	listUseCase *apporder.ListOrdersUseCase,
	itemsUseCase *apporder.GetOrderItemsUseCase,
	itemUseCase *apporder.GetOrderItemUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUseCase:       createUseCase,
		updateStatusUseCase: updateStatusUseCase,
		listUseCase:         listUseCase,
		itemsUseCase:        itemsUseCase,
		itemUseCase:         itemUseCase,
	}
}

// CreateOrder 提交订单
// @Summary      提交订单
// @Description  把当前用户购物车结算为订单（单事务），成功后清空购物车
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "收货信息"
// @Success      201 {object} response.Response "下单成功"
// @Failure      404 {object} response.Response "购物车不存在"
// @Failure      409 {object} response.Response "购物车为空"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateStatus 变更订单状态
// @Summary      变更订单状态
// @Description  管理员直接设置订单状态，不做状态机约束（支持客服改单、退货回滚）
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response "变更成功"
// @Failure      400 {object} response.Response "未知状态"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), apporder.UpdateStatusRequest{
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOrders 我的订单
// @Summary      我的订单
// @Description  只返回当前登录用户自己的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		UserID:   userID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrderItems 订单明细列表
// @Summary      订单明细列表
// @Description  查看他人订单返回403
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      403 {object} response.Response "无权查看该订单"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id}/items [get]
func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.itemsUseCase.Execute(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrderItem 单条订单明细
// @Summary      单条订单明细
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        itemId path int true "明细ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      403 {object} response.Response "无权查看该订单"
// @Failure      404 {object} response.Response "订单或明细不存在"
// @Router       /api/v1/orders/{id}/items/{itemId} [get]
func (h *OrderHandler) GetOrderItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	result, err := h.itemUseCase.Execute(c.Request.Context(), userID, orderID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
