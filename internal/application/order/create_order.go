package order

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// TxManager 事务管理器接口
// mysql.TxManager实现此接口;单元测试注入直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 事件发布接口
// mq.Publisher实现此接口
type EventPublisher interface {
	Publish(routingKey string, message interface{}) error
}

// CreateOrderUseCase 创建订单用例
// 这是整个项目最核心的用例:购物车结算
// 涉及:事务处理、价格快照、购物车清空、事件发布
type CreateOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	bookRepo  book.Repository
	txManager TxManager
	publisher EventPublisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewCreateOrderUseCase 创建下单用例
// publisher可以为nil(未配置MQ时降级为不发事件)
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	publisher EventPublisher,
	breaker *circuitbreaker.CircuitBreaker,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		publisher: publisher,
		breaker:   breaker,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID          uint   // 买家用户ID(从JWT中提取)
	ShippingAddress string // 收货地址
}

// CreateOrderResponse 下单响应DTO
type CreateOrderResponse struct {
	OrderID   uint            `json:"order_id"`
	OrderNo   string          `json:"order_no"`
	Total     int64           `json:"total"`
	TotalYuan string          `json:"total_yuan"`
	Status    string          `json:"status"`
	Items     []OrderItemView `json:"items"`
	CreatedAt string          `json:"created_at"`
}

// OrderCreatedEvent 订单创建事件(发布到MQ)
type OrderCreatedEvent struct {
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"item_count"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行下单用例
// 核心流程(单事务,任一步失败全部回滚):
// 1. 加载用户购物车,从未加购→404
// 2. 购物车为空→409
// 3. 逐条校验图书仍然存在,并按"当前价格×数量"生成行金额快照
// 4. 总金额=各行金额之和
// 5. 创建订单(状态PENDING,订单号生成)及明细
// 6. 清空购物车
// 提交后:发布order.created事件(经熔断器,发布失败只记日志不影响下单)
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	start := time.Now()

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:加载购物车
		// ========================================
		c, err := uc.cartRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			return err // 购物车不存在→ErrCartNotFound(404)
		}

		// ========================================
		// 步骤2:空购物车不能下单
		// ========================================
		if c.IsEmpty() {
			return apperrors.ErrEmptyCart
		}

		// ========================================
		// 步骤3:生成价格快照
		// ========================================
		// 使用"结算时点的数据库价格"而非前端传递的价格,防止改价攻击;
		// 行金额一旦写入订单明细,图书后续改价不再影响
		orderItems := make([]order.OrderItem, len(c.Items))
		var total int64
		for i, item := range c.Items {
			b, err := uc.bookRepo.FindByID(txCtx, item.BookID)
			if err != nil {
				return err // 图书已下架→ErrBookNotFound(404),整单失败
			}

			lineTotal := b.Price * int64(item.Quantity)
			orderItems[i] = order.OrderItem{
				BookID:   item.BookID,
				Quantity: item.Quantity,
				Price:    lineTotal, // 行金额快照
			}
			total += lineTotal
		}

		// ========================================
		// 步骤4:创建订单(包含明细)
		// ========================================
		orderNo := order.GenerateOrderNo()
		newOrder := order.NewOrder(orderNo, req.UserID, req.ShippingAddress, orderItems, total)

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// ========================================
		// 步骤5:清空购物车(事务内,失败则整单回滚)
		// ========================================
		if err := uc.cartRepo.Clear(txCtx, c.ID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	if err != nil {
		metrics.IncCounter(metrics.OrdersFailedTotal)
		return nil, err
	}

	// 业务指标
	metrics.IncCounter(metrics.OrdersCreatedTotal)
	metrics.ObserveHistogram(metrics.OrderCreationDuration, time.Since(start).Seconds())
	metrics.ObserveHistogram(metrics.OrderAmount, float64(result.Total)/100.0)

	// 事务已提交,发布订单创建事件
	// 经熔断器保护:MQ持续故障时快速失败,不拖慢下单接口
	uc.publishOrderCreated(result)

	return toCreateOrderResponse(result), nil
}

// publishOrderCreated 发布订单创建事件
// 发布失败(包括熔断器打开)只记录日志,不影响下单结果
// publisher与breaker均可为nil:无breaker时直接发布
func (uc *CreateOrderUseCase) publishOrderCreated(o *order.Order) {
	if uc.publisher == nil {
		return
	}

	event := OrderCreatedEvent{
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		ItemCount: len(o.Items),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}

	publish := func() error {
		return uc.publisher.Publish("order.created", event)
	}

	var err error
	if uc.breaker != nil {
		err = uc.breaker.Execute(publish)
	} else {
		err = publish()
	}
	if err != nil {
		if err == circuitbreaker.ErrOpenState {
			log.Printf("订单事件熔断中,跳过发布 order_no=%s", o.OrderNo)
		} else {
			log.Printf("发布订单事件失败 order_no=%s: %v", o.OrderNo, err)
		}
	}
}

// toCreateOrderResponse 领域实体 → 下单响应DTO
func toCreateOrderResponse(o *order.Order) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID:   o.ID,
		OrderNo:   o.OrderNo,
		Total:     o.Total,
		TotalYuan: formatPrice(o.Total),
		Status:    string(o.Status),
		Items:     toOrderItemViews(o.Items),
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
