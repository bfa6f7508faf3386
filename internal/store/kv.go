package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrMiss = errors.New("cache miss")

// KV 持久化网关抽象（用于在单元测试中替换 Redis）
// 只有 get/set/append/list，无跨 key 事务
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Append(ctx context.Context, key string, values ...string) error
	List(ctx context.Context, key string) ([]string, error)
}

// RedisKV 基于 go-redis 的 KV 实现
// maxListLen > 0 时，Append 之后把列表裁剪到最近 maxListLen 条（告警保留策略）
type RedisKV struct {
	client     *redis.Client
	maxListLen int64
}

func NewRedisKV(client *redis.Client, maxListLen int64) *RedisKV {
	return &RedisKV{client: client, maxListLen: maxListLen}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Append 单次 RPUSH 原子追加，并发调用不会丢条目
func (r *RedisKV) Append(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	if err := r.client.RPush(ctx, key, args...).Err(); err != nil {
		return err
	}
	if r.maxListLen > 0 {
		// 裁剪是尽力而为：失败不影响已追加的数据
		return r.client.LTrim(ctx, key, -r.maxListLen, -1).Err()
	}
	return nil
}

func (r *RedisKV) List(ctx context.Context, key string) ([]string, error) {
	vals, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return vals, nil
}
