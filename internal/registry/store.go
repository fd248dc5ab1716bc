package registry

import (
	"context"
	"sync"
)

// Store 按 key（会话 id 或全局 key）保存批次
type Store interface {
	// Load 读取批次, 不存在时返回空批次
	Load(ctx context.Context, key string) (*Batch, error)
	// Save 整体替换批次
	Save(ctx context.Context, key string, batch *Batch) error
	// Name 存储类型名, 用于启动日志
	Name() string
}

// MemoryStore 进程内存储, Redis 不可用时的后备方案
type MemoryStore struct {
	mu      sync.RWMutex
	batches map[string]*Batch
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{batches: map[string]*Batch{}}
}

func (m *MemoryStore) Load(_ context.Context, key string) (*Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// 返回副本, 调用方修改不会影响已保存的批次
	return m.batches[key].Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, batch *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches[key] = batch.Clone()
	return nil
}

func (m *MemoryStore) Name() string {
	return "memory"
}
