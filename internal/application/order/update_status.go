package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// UpdateStatusUseCase 更新订单状态用例(管理员)
// 设计说明:状态由管理员直接设定,任意已知状态间均可切换
// (客服改单、退货回滚等场景需要任意方向流转,不做状态机约束)
type UpdateStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateStatusUseCase 创建更新状态用例
func NewUpdateStatusUseCase(orderRepo order.Repository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// UpdateStatusRequest 更新状态请求DTO
type UpdateStatusRequest struct {
	OrderID uint
	Status  string // PENDING/PAID/SHIPPED/COMPLETED/CANCELLED
}

// Execute 执行状态更新
// 未知状态→400;订单不存在→404
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*OrderView, error) {
	// 1. 解析状态(未知状态→ErrInvalidStatus)
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	// 2. 确认订单存在
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	// 3. 更新状态
	if err := uc.orderRepo.UpdateStatus(ctx, req.OrderID, status); err != nil {
		return nil, err
	}

	o.Status = status
	return toOrderView(o), nil
}
