package upload

import "terminal-terrace/image-relay/internal/registry"

// FormField multipart 表单中文件字段名
const FormField = "images"

// UploadResponse 上传结果, 顺序与上传顺序一致
type UploadResponse struct {
	Files []registry.FileRef `json:"files"`
}
