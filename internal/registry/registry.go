package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"terminal-terrace/image-relay/packages/response"
)

// 单个批次内 id 冲突时最多重新生成的次数
const maxIDAttempts = 8

// Registry 文件登记表, 批次按 key 存在 Store 中
type Registry struct {
	store Store
	newID func() string
}

type Option func(*Registry)

// WithIDGenerator 替换 id 生成函数（测试用）
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		r.newID = gen
	}
}

func New(store Store, opts ...Option) *Registry {
	r := &Registry{
		store: store,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StoreName 底层存储类型
func (r *Registry) StoreName() string {
	return r.store.Name()
}

// Register 为每个文件分配新 id 并替换 key 下已有的批次, 返回值顺序与上传顺序一致
func (r *Registry) Register(ctx context.Context, key string, files []Incoming) ([]FileRef, error) {
	batch := &Batch{Files: make([]UploadedFile, 0, len(files))}
	seen := make(map[string]struct{}, len(files))

	for _, f := range files {
		id, err := r.uniqueID(seen)
		if err != nil {
			return nil, err
		}
		seen[id] = struct{}{}
		batch.Files = append(batch.Files, UploadedFile{
			ID:           id,
			OriginalName: f.Name,
			Content:      f.Content,
			MediaType:    f.MediaType,
		})
	}

	if err := r.store.Save(ctx, key, batch); err != nil {
		return nil, storeError(err)
	}
	return batch.Refs(), nil
}

// ReorderAndRename 按 order 重排 key 下的批次并以 prefix 重命名, 见 Rename
func (r *Registry) ReorderAndRename(ctx context.Context, key string, order []string, prefix string) ([]FileRef, error) {
	// 先校验前缀, 失败时不读不写
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	current, err := r.store.Load(ctx, key)
	if err != nil {
		return nil, storeError(err)
	}

	renamed, err := Rename(current, order, prefix)
	if err != nil {
		return nil, err
	}

	if err := r.store.Save(ctx, key, renamed); err != nil {
		return nil, storeError(err)
	}
	return renamed.Refs(), nil
}

// Batch 读取 key 下的当前批次, 不修改
func (r *Registry) Batch(ctx context.Context, key string) (*Batch, error) {
	batch, err := r.store.Load(ctx, key)
	if err != nil {
		return nil, storeError(err)
	}
	return batch, nil
}

func (r *Registry) uniqueID(seen map[string]struct{}) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := r.newID()
		if _, dup := seen[id]; !dup && id != "" {
			return id, nil
		}
	}
	return "", response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(fmt.Sprintf("连续 %d 次生成的文件 id 冲突", maxIDAttempts)),
	)
}

func storeError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("批次存储失败"),
		response.WithError(err),
	)
}
