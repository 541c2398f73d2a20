package order

import (
	"time"
)

// Status 订单状态
// 设计说明:
// 1. 使用string存储,接口返回和数据库中均为可读的状态名
// 2. 状态由管理员直接设定,不做状态机约束(客服改单、退货回滚等
//    场景都需要任意方向流转,约束放在管理后台的操作界面上)
type Status string

const (
	StatusPending   Status = "PENDING"   // 待支付(下单后的初始状态)
	StatusPaid      Status = "PAID"      // 已支付
	StatusShipped   Status = "SHIPPED"   // 已发货
	StatusCompleted Status = "COMPLETED" // 已完成
	StatusCancelled Status = "CANCELLED" // 已取消
)

// ParseStatus 解析状态字符串
// 未知状态返回ErrInvalidStatus
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusShipped, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体
// 2. Total价格冗余存储,等于全部条目行金额之和(下单时点快照)
// 3. 创建后除状态外不可修改
type Order struct {
	ID              uint
	OrderNo         string // 订单号(业务主键,全局唯一)
	UserID          uint   // 买家用户ID
	Total           int64  // 订单总金额(分),= Σ Items[i].Price
	Status          Status // 订单状态
	ShippingAddress string // 收货地址(下单时点快照)
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem 订单明细项
// 设计说明:
// 1. 不是独立聚合根,必须通过Order访问
// 2. Price是"下单时的行金额"(单价×数量的快照),图书后续改价
//    不影响历史订单
// 3. 不直接关联Book对象,只保存BookID(避免跨聚合引用)
type OrderItem struct {
	ID       uint
	OrderID  uint  // 所属订单ID
	BookID   uint  // 图书ID
	Quantity int   // 购买数量
	Price    int64 // 行金额快照(分)=下单时单价×数量
}

// NewOrder 创建新订单(工厂方法)
// 初始状态为PENDING;total由调用方根据条目计算后传入
func NewOrder(orderNo string, userID uint, shippingAddress string, items []OrderItem, total int64) *Order {
	now := time.Now()
	return &Order{
		OrderNo:         orderNo,
		UserID:          userID,
		Total:           total,
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SetStatus 设定订单状态(管理员操作)
// 任意已知状态间均可切换,未知状态返回ErrInvalidStatus
func (o *Order) SetStatus(target Status) error {
	if _, err := ParseStatus(string(target)); err != nil {
		return err
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// CalculateTotal 计算订单总金额
// 根据条目行金额实时求和,用于创建订单时的一致性校验
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}

// FindItemByID 查找订单内指定明细
func (o *Order) FindItemByID(itemID uint) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}
