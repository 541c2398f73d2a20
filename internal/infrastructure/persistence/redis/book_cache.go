package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// BookCache 图书详情缓存（Cache-Aside模式）
// 设计说明：
// 1. 先查缓存，未命中再查数据库并回填
// 2. 更新/删除图书时删除缓存而非更新缓存
//    （删除简单可靠，下次查询重新加载最新数据）
// 3. Key设计：book:detail:{book_id}，有业务前缀便于管理
type BookCache struct {
	client    *redis.Client
	detailTTL time.Duration
}

// NewBookCache 创建图书缓存
func NewBookCache(client *redis.Client, detailTTL time.Duration) *BookCache {
	return &BookCache{
		client:    client,
		detailTTL: detailTTL,
	}
}

// GetDetail 获取图书详情缓存
// 缓存未命中时返回(nil, nil)，调用方需要查询数据库
func (c *BookCache) GetDetail(ctx context.Context, bookID uint) (*book.Book, error) {
	key := c.detailKey(bookID)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // 缓存未命中
		}
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}

	return &b, nil
}

// SetDetail 设置图书详情缓存
func (c *BookCache) SetDetail(ctx context.Context, b *book.Book) error {
	key := c.detailKey(b.ID)

	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.detailTTL).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}

	return nil
}

// DeleteDetail 删除图书详情缓存（更新/删除图书时调用）
func (c *BookCache) DeleteDetail(ctx context.Context, bookID uint) error {
	key := c.detailKey(bookID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}

	return nil
}

// detailKey 生成图书详情缓存key
// 格式：book:detail:{book_id}
func (c *BookCache) detailKey(bookID uint) string {
	return fmt.Sprintf("book:detail:%d", bookID)
}
