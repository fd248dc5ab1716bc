// Package registry 服务端文件登记表: 为每个上传文件分配稳定 id, 之后的排序和重命名都只按 id 寻址
package registry

// UploadedFile 一个已上传的文件（内容只保存在服务端）
type UploadedFile struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
	Content      []byte `json:"content"`
	MediaType    string `json:"mediaType"`
}

// Batch 当前批次, 有序
type Batch struct {
	Files []UploadedFile `json:"files"`
}

// FileRef 返回给客户端的文件引用
type FileRef struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
}

// Incoming 待登记的上传文件
type Incoming struct {
	Name      string
	Content   []byte
	MediaType string
}

// Len 文件数量
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Files)
}

// Refs 按批次顺序返回文件引用
func (b *Batch) Refs() []FileRef {
	refs := make([]FileRef, 0, b.Len())
	if b == nil {
		return refs
	}
	for _, f := range b.Files {
		refs = append(refs, FileRef{ID: f.ID, OriginalName: f.OriginalName})
	}
	return refs
}

// Clone 浅拷贝文件列表, 内容字节共享（内容从不被修改）
func (b *Batch) Clone() *Batch {
	if b == nil {
		return &Batch{}
	}
	files := make([]UploadedFile, len(b.Files))
	copy(files, b.Files)
	return &Batch{Files: files}
}
