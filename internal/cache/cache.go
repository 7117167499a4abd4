// Package cache 帖子详情的 Redis 旁路缓存
// 未启用 Redis 时缓存实例为 nil，所有方法对 nil 接收者安全，直接退化为读库
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// PostCache 帖子详情缓存，更新/删除时失效
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache 创建帖子缓存，client 为 nil 时返回 nil（缓存禁用）
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

func postKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// Get 读取缓存，命中时反序列化到 dest 并返回 true
func (c *PostCache) Get(ctx context.Context, id uint, dest any) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, postKey(id)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// 缓存内容损坏按未命中处理
		return false
	}
	return true
}

// Set 写入缓存，失败仅记录日志不影响主流程
func (c *PostCache) Set(ctx context.Context, id uint, value any) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, postKey(id), data, c.ttl).Err(); err != nil {
		log.Printf("缓存写入失败 post:%d: %v", id, err)
	}
}

// Invalidate 使缓存失效（帖子更新或删除后调用）
func (c *PostCache) Invalidate(ctx context.Context, id uint) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, postKey(id)).Err(); err != nil {
		log.Printf("缓存失效失败 post:%d: %v", id, err)
	}
}
