package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgDatabase "terminal-terrace/image-relay/packages/database"
)

const (
	// 批次 Redis key 前缀
	BatchPrefix = "batch:"
	// Redis 操作超时
	redisOpTimeout = 5 * time.Second
)

// RedisStore 把批次序列化为 JSON 存在 Redis, 过期时间与会话一致
type RedisStore struct {
	redis *pkgDatabase.RedisClient
	ttl   time.Duration
}

func NewRedisStore(client *pkgDatabase.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, key string) (*Batch, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	data, err := s.redis.Get(ctx, BatchPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Batch{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取批次失败: %w", err)
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("批次解析失败: %w", err)
	}
	return &batch, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, batch *Batch) error {
	if batch == nil {
		batch = &Batch{}
	}
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("批次序列化失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.redis.Set(ctx, BatchPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("保存批次失败: %w", err)
	}
	return nil
}

func (s *RedisStore) Name() string {
	return "redis"
}
