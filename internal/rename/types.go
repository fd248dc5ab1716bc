package rename

import "terminal-terrace/image-relay/internal/registry"

// FileItem 客户端当前顺序中的一项, 只使用 id, 其余字段忽略
type FileItem struct {
	ID string `json:"id" example:"3b241101-e2bb-4255-8caf-4136c566a962"`
}

// RenameRequest 重命名请求
type RenameRequest struct {
	Files  []FileItem `json:"files" binding:"required"`
	Prefix string     `json:"prefix" binding:"required" example:"trip"`
}

// RenameResponse 重命名结果, 顺序为新的批次顺序
type RenameResponse struct {
	Success bool               `json:"success" example:"true"`
	Files   []registry.FileRef `json:"files"`
}

// IDs 按请求顺序取出 id
func (r *RenameRequest) IDs() []string {
	ids := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		ids = append(ids, f.ID)
	}
	return ids
}
