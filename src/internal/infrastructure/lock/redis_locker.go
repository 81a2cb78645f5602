// Package lock 提供跨服務實例的互斥鎖（Redis SET NX）。
package lock

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLocker 以 SET key value NX PX ttl 取得鎖
//
// 鎖不主動釋放，到期自動失效；持有者在 ttl 內重複呼叫仍返回 true。
type RedisLocker struct {
	client redis.UniversalClient
	owner  string
}

// NewRedisLocker 創建鎖；owner 標識本實例（hostname + 隨機後綴）
func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "loyalty"
	}
	return &RedisLocker{client: client, owner: host + "-" + uuid.NewString()[:8]}
}

// NewClient 依位址建立 Redis 客戶端，並以 PING 確認連線
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("lock: redis ping %s: %w", addr, err)
	}
	return client, nil
}

// TryLock 嘗試取得鎖；已被其他實例持有時返回 false
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("lock: empty key")
	}
	if ttl <= 0 {
		return false, fmt.Errorf("lock: ttl must be positive, got %s", ttl)
	}

	ok, err := l.client.SetNX(ctx, key, l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock: setnx %s: %w", key, err)
	}
	if ok {
		return true, nil
	}

	holder, err := l.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// 剛好過期，下一輪再競爭
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lock: get %s: %w", key, err)
	}
	return holder == l.owner, nil
}

// Owner 本實例的鎖持有者標識
func (l *RedisLocker) Owner() string {
	return l.owner
}
