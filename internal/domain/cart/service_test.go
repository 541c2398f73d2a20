package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版购物车仓储,仅供单元测试
type fakeRepository struct {
	carts      map[uint]*Cart // key: cartID
	items      map[uint]*CartItem
	nextCartID uint
	nextItemID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		carts:      make(map[uint]*Cart),
		items:      make(map[uint]*CartItem),
		nextCartID: 1,
		nextItemID: 1,
	}
}

func (f *fakeRepository) Create(ctx context.Context, cart *Cart) error {
	cart.ID = f.nextCartID
	f.nextCartID++
	f.carts[cart.ID] = cart
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*Cart, error) {
	c, ok := f.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return f.withItems(c), nil
}

func (f *fakeRepository) FindByUserID(ctx context.Context, userID uint) (*Cart, error) {
	for _, c := range f.carts {
		if c.UserID == userID {
			return f.withItems(c), nil
		}
	}
	return nil, ErrCartNotFound
}

func (f *fakeRepository) FindItemByID(ctx context.Context, itemID uint) (*CartItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, ErrCartItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeRepository) CreateItem(ctx context.Context, item *CartItem) error {
	item.ID = f.nextItemID
	f.nextItemID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	item, ok := f.items[itemID]
	if !ok {
		return ErrCartItemNotFound
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeRepository) DeleteItem(ctx context.Context, itemID uint) error {
	if _, ok := f.items[itemID]; !ok {
		return ErrCartItemNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeRepository) Clear(ctx context.Context, cartID uint) error {
	for id, item := range f.items {
		if item.CartID == cartID {
			delete(f.items, id)
		}
	}
	return nil
}

// withItems 组装包含条目的购物车快照
func (f *fakeRepository) withItems(c *Cart) *Cart {
	copied := *c
	copied.Items = nil
	for _, item := range f.items {
		if item.CartID == c.ID {
			copied.Items = append(copied.Items, *item)
		}
	}
	return &copied
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("首次加购自动创建购物车", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		c, err := svc.AddItem(ctx, 1, 100, 2)
		require.NoError(t, err)

		assert.Equal(t, uint(1), c.UserID)
		require.Len(t, c.Items, 1)
		assert.Equal(t, uint(100), c.Items[0].BookID)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("重复加购同一本书合并数量", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		_, err := svc.AddItem(ctx, 1, 100, 2)
		require.NoError(t, err)

		c, err := svc.AddItem(ctx, 1, 100, 3)
		require.NoError(t, err)

		// 仍然只有一条记录,数量合并为5
		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("不同图书各占一条记录", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		_, err := svc.AddItem(ctx, 1, 100, 1)
		require.NoError(t, err)

		c, err := svc.AddItem(ctx, 1, 200, 1)
		require.NoError(t, err)

		assert.Len(t, c.Items, 2)
	})

	t.Run("数量小于1返回错误", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		_, err := svc.AddItem(ctx, 1, 100, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		// 非法请求不应创建购物车
		_, err = svc.GetCart(ctx, 1)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})

	t.Run("不同用户的购物车互不影响", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		_, err := svc.AddItem(ctx, 1, 100, 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, 2, 100, 3)
		require.NoError(t, err)

		c1, err := svc.GetCart(ctx, 1)
		require.NoError(t, err)
		c2, err := svc.GetCart(ctx, 2)
		require.NoError(t, err)

		assert.NotEqual(t, c1.ID, c2.ID)
		assert.Equal(t, 1, c1.Items[0].Quantity)
		assert.Equal(t, 3, c2.Items[0].Quantity)
	})
}

func TestService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *Cart) {
		repo := newFakeRepository()
		svc := NewService(repo)
		c, err := svc.AddItem(ctx, 1, 100, 5)
		require.NoError(t, err)
		return svc, c
	}

	t.Run("正增量增加数量", func(t *testing.T) {
		svc, c := setup(t)

		item, err := svc.UpdateItemQuantity(ctx, 1, c.Items[0].ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 8, item.Quantity)
	})

	t.Run("负增量减少数量", func(t *testing.T) {
		svc, c := setup(t)

		item, err := svc.UpdateItemQuantity(ctx, 1, c.Items[0].ID, -4)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("调整后数量小于1返回错误", func(t *testing.T) {
		svc, c := setup(t)

		_, err := svc.UpdateItemQuantity(ctx, 1, c.Items[0].ID, -5)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		// 原数量保持不变
		got, err := svc.GetCart(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Items[0].Quantity)
	})

	t.Run("条目不存在返回404错误", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.UpdateItemQuantity(ctx, 1, 9999, 1)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})

	t.Run("操作他人条目返回403错误", func(t *testing.T) {
		svc, c := setup(t)

		// 用户2尝试调整用户1的条目
		_, err := svc.UpdateItemQuantity(ctx, 2, c.Items[0].ID, 1)
		assert.ErrorIs(t, err, ErrCartAccessDenied)
	})
}

func TestService_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("删除自己的条目", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)
		c, err := svc.AddItem(ctx, 1, 100, 2)
		require.NoError(t, err)

		err = svc.RemoveItem(ctx, 1, c.Items[0].ID)
		require.NoError(t, err)

		got, err := svc.GetCart(ctx, 1)
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})

	t.Run("删除他人条目返回403错误", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)
		c, err := svc.AddItem(ctx, 1, 100, 2)
		require.NoError(t, err)

		err = svc.RemoveItem(ctx, 2, c.Items[0].ID)
		assert.ErrorIs(t, err, ErrCartAccessDenied)
	})

	t.Run("条目不存在返回404错误", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		err := svc.RemoveItem(ctx, 1, 9999)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}
