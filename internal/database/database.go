package database

import (
	"log"
	"time"

	"terminal-terrace/image-relay/config"
	"terminal-terrace/image-relay/internal/registry"
	pkgDatabase "terminal-terrace/image-relay/packages/database"
)

// InitStore 按配置选择批次存储: Redis 可用时用 Redis, 否则退回进程内存储
func InitStore() registry.Store {
	redisConf := config.Conf.Redis
	sessionTTL := time.Duration(config.Conf.Session.MaxAge) * time.Second

	if !redisConf.Enabled {
		log.Println("[image-relay] Redis 未启用, 使用内存存储")
		return registry.NewMemoryStore()
	}

	client, err := pkgDatabase.InitRedis(&pkgDatabase.RedisConfig{
		ServiceName: "image-relay",
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})
	if err != nil {
		log.Printf("[image-relay] Failed to connect to Redis, using memory store: %v", err)
		return registry.NewMemoryStore()
	}

	return registry.NewRedisStore(client, sessionTTL)
}
