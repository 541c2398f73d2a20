package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCart 测试购物车
func TestCart(t *testing.T) {
	RequireServer(t)
	adminToken := AdminLogin(t)
	book := PublishTestBook(t, adminToken, 5900)

	addItem := func(t *testing.T, token string, bookID uint, quantity int) *Response {
		return PostJSON(t, BaseURL+"/cart", map[string]interface{}{
			"book_id":  bookID,
			"quantity": quantity,
		}, token)
	}

	cartOf := func(t *testing.T, resp *Response) *CartData {
		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		return &data
	}

	t.Run("从未加购时查询购物车返回404", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "empty_cart")

		resp := GetJSON(t, BaseURL+"/cart", token)
		assert.Equal(t, 40405, resp.Code, "从未加购应返回购物车不存在")
	})

	t.Run("首次加购自动创建购物车", func(t *testing.T) {
		token, userID := RegisterAndLogin(t, "first_add")

		resp := addItem(t, token, book.ID, 2)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)

		cart := cartOf(t, resp)
		assert.Equal(t, userID, cart.UserID)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, int64(11800), cart.Items[0].Subtotal)
	})

	t.Run("重复加购同一本书合并数量", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "merge")

		require.Equal(t, 0, addItem(t, token, book.ID, 2).Code)
		resp := addItem(t, token, book.ID, 3)
		require.Equal(t, 0, resp.Code)

		cart := cartOf(t, resp)
		require.Len(t, cart.Items, 1, "同一本书只应有一条记录")
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("加购不存在的图书返回404", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "ghost_book")

		resp := addItem(t, token, 99999999, 1)
		assert.Equal(t, 40402, resp.Code)
	})

	t.Run("增量调整数量", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "delta")

		addResp := addItem(t, token, book.ID, 5)
		require.Equal(t, 0, addResp.Code)
		itemID := cartOf(t, addResp).Items[0].ID

		// delta=-2 → 3
		resp := PutJSON(t, fmt.Sprintf("%s/cart/cart-items/%d", BaseURL, itemID),
			map[string]int{"delta": -2}, token)
		require.Equal(t, 0, resp.Code, "调整失败: %s", resp.Message)

		var item struct {
			Quantity int `json:"quantity"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &item))
		assert.Equal(t, 3, item.Quantity)

		// 调整到0应失败,数量保持不变
		resp = PutJSON(t, fmt.Sprintf("%s/cart/cart-items/%d", BaseURL, itemID),
			map[string]int{"delta": -3}, token)
		assert.NotEqual(t, 0, resp.Code, "调整后数量小于1应该失败")

		getResp := GetJSON(t, BaseURL+"/cart", token)
		require.Equal(t, 0, getResp.Code)
		assert.Equal(t, 3, cartOf(t, getResp).Items[0].Quantity)
	})

	t.Run("操作他人条目返回403", func(t *testing.T) {
		aliceToken, _ := RegisterAndLogin(t, "alice")
		bobToken, _ := RegisterAndLogin(t, "bob")

		addResp := addItem(t, aliceToken, book.ID, 1)
		require.Equal(t, 0, addResp.Code)
		itemID := cartOf(t, addResp).Items[0].ID

		resp := PutJSON(t, fmt.Sprintf("%s/cart/cart-items/%d", BaseURL, itemID),
			map[string]int{"delta": 1}, bobToken)
		assert.Equal(t, 40303, resp.Code, "他人条目应返回403错误")

		resp = DeleteJSON(t, fmt.Sprintf("%s/cart/cart-items/%d", BaseURL, itemID), bobToken)
		assert.Equal(t, 40303, resp.Code)
	})

	t.Run("删除条目", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "remove")

		addResp := addItem(t, token, book.ID, 1)
		require.Equal(t, 0, addResp.Code)
		itemID := cartOf(t, addResp).Items[0].ID

		resp := DeleteJSON(t, fmt.Sprintf("%s/cart/cart-items/%d", BaseURL, itemID), token)
		require.Equal(t, 0, resp.Code)

		getResp := GetJSON(t, BaseURL+"/cart", token)
		require.Equal(t, 0, getResp.Code)
		assert.Empty(t, cartOf(t, getResp).Items)
	})
}

// TestCheckout 测试购物车结算(核心流程)
func TestCheckout(t *testing.T) {
	RequireServer(t)
	adminToken := AdminLogin(t)

	bookA := PublishTestBook(t, adminToken, 1000) // 10.00元
	bookB := PublishTestBook(t, adminToken, 500)  // 5.00元

	addItem := func(t *testing.T, token string, bookID uint, quantity int) {
		resp := PostJSON(t, BaseURL+"/cart", map[string]interface{}{
			"book_id":  bookID,
			"quantity": quantity,
		}, token)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)
	}

	t.Run("正常结算", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "checkout")
		addItem(t, token, bookA.ID, 2)
		addItem(t, token, bookB.ID, 1)

		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"shipping_address": "上海市浦东新区张江路1号",
		}, token)
		require.Equal(t, 0, resp.Code, "下单失败: %s", resp.Message)

		var order OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &order))

		// 总金额 = 10.00×2 + 5.00×1 = 25.00
		assert.Equal(t, int64(2500), order.Total)
		assert.Equal(t, "25.00", order.TotalYuan)
		assert.Equal(t, "PENDING", order.Status)
		assert.NotEmpty(t, order.OrderNo)
		require.Len(t, order.Items, 2)

		// 结算后购物车被清空(购物车记录保留,条目清空)
		cartResp := GetJSON(t, BaseURL+"/cart", token)
		require.Equal(t, 0, cartResp.Code)
		var cart CartData
		require.NoError(t, json.Unmarshal(cartResp.Data, &cart))
		assert.Empty(t, cart.Items)
	})

	t.Run("行金额快照不随改价变化", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "snapshot")
		book := PublishTestBook(t, adminToken, 2000)
		addItem(t, token, book.ID, 3)

		orderResp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"shipping_address": "地址",
		}, token)
		require.Equal(t, 0, orderResp.Code)

		var order OrderData
		require.NoError(t, json.Unmarshal(orderResp.Data, &order))
		require.Equal(t, int64(6000), order.Total)

		// 改价后历史订单明细不变
		putResp := PutJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID),
			map[string]interface{}{"price": 9900}, adminToken)
		require.Equal(t, 0, putResp.Code)

		itemsResp := GetJSON(t, fmt.Sprintf("%s/orders/%d/items", BaseURL, order.OrderID), token)
		require.Equal(t, 0, itemsResp.Code)

		var items []OrderItemData
		require.NoError(t, json.Unmarshal(itemsResp.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, int64(6000), items[0].Price, "行金额快照应保持下单时点的价格")
	})

	t.Run("从未加购下单返回404", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "no_cart")

		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"shipping_address": "地址",
		}, token)
		assert.Equal(t, 40405, resp.Code)
	})

	t.Run("空购物车下单返回409", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "empty_checkout")
		addItem(t, token, bookA.ID, 1)

		// 第一单清空购物车
		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"shipping_address": "地址",
		}, token)
		require.Equal(t, 0, resp.Code)

		// 第二单:购物车已空
		resp = PostJSON(t, BaseURL+"/orders", map[string]string{
			"shipping_address": "地址",
		}, token)
		assert.Equal(t, 40006, resp.Code, "空购物车下单应返回409错误")
	})
}

// TestOrderQueriesAndStatus 测试订单查询与状态变更
func TestOrderQueriesAndStatus(t *testing.T) {
	RequireServer(t)
	adminToken := AdminLogin(t)
	book := PublishTestBook(t, adminToken, 3000)

	placeOrder := func(t *testing.T, token string) *OrderData {
		addResp := PostJSON(t, BaseURL+"/cart", map[string]interface{}{
			"book_id":  book.ID,
			"quantity": 1,
		}, token)
		require.Equal(t, 0, addResp.Code)

		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"shipping_address": "地址",
		}, token)
		require.Equal(t, 0, resp.Code, "下单失败: %s", resp.Message)

		var order OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &order))
		return &order
	}

	t.Run("订单列表只含本人订单", func(t *testing.T) {
		aliceToken, _ := RegisterAndLogin(t, "order_alice")
		bobToken, _ := RegisterAndLogin(t, "order_bob")

		aliceOrder := placeOrder(t, aliceToken)
		placeOrder(t, bobToken)

		resp := GetJSON(t, BaseURL+"/orders", aliceToken)
		require.Equal(t, 0, resp.Code)

		var data struct {
			List []struct {
				OrderNo string `json:"order_no"`
			} `json:"list"`
			Total int64 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Equal(t, int64(1), data.Total)
		assert.Equal(t, aliceOrder.OrderNo, data.List[0].OrderNo)
	})

	t.Run("查看他人订单明细返回403", func(t *testing.T) {
		aliceToken, _ := RegisterAndLogin(t, "items_alice")
		bobToken, _ := RegisterAndLogin(t, "items_bob")
		order := placeOrder(t, aliceToken)

		resp := GetJSON(t, fmt.Sprintf("%s/orders/%d/items", BaseURL, order.OrderID), bobToken)
		assert.Equal(t, 40303, resp.Code)
	})

	t.Run("单条明细查询", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "single_item")
		order := placeOrder(t, token)
		itemID := order.Items[0].ID

		resp := GetJSON(t, fmt.Sprintf("%s/orders/%d/items/%d", BaseURL, order.OrderID, itemID), token)
		require.Equal(t, 0, resp.Code)

		// 不属于该订单的明细ID返回404
		resp = GetJSON(t, fmt.Sprintf("%s/orders/%d/items/99999999", BaseURL, order.OrderID), token)
		assert.Equal(t, 40407, resp.Code)
	})

	t.Run("管理员任意切换订单状态", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "status")
		order := placeOrder(t, token)

		for _, status := range []string{"PAID", "SHIPPED", "COMPLETED", "CANCELLED"} {
			resp := PatchJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, order.OrderID),
				map[string]string{"status": status}, adminToken)
			require.Equal(t, 0, resp.Code, "状态切换到%s失败: %s", status, resp.Message)
		}
	})

	t.Run("普通用户变更状态被拒绝", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "status_customer")
		order := placeOrder(t, token)

		resp := PatchJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, order.OrderID),
			map[string]string{"status": "PAID"}, token)
		assert.Equal(t, 40300, resp.Code)
	})

	t.Run("未知状态返回400", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "bad_status")
		order := placeOrder(t, token)

		resp := PatchJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, order.OrderID),
			map[string]string{"status": "REFUNDED"}, adminToken)
		assert.NotEqual(t, 0, resp.Code)
	})
}
