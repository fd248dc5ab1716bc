package registry

import (
	"strconv"
	"strings"

	"terminal-terrace/image-relay/packages/response"
)

// ErrEmptyPrefix 重命名前缀为空
var ErrEmptyPrefix = response.NewBusinessError(
	response.WithErrorCode(response.InvalidParameter),
	response.WithErrorMessage("重命名前缀不能为空"),
)

// Extension 返回文件名中最后一个 "." 起（含）的部分, 没有 "." 时返回空串.
// 只看文件名, 不根据内容推断.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i:]
}

// SequenceName 生成 <prefix>__<position><ext>, position 从 1 开始
func SequenceName(prefix string, position int, original string) string {
	return prefix + "__" + strconv.Itoa(position) + Extension(original)
}

// Rename 按客户端给出的 id 顺序重排批次并重命名.
//
// 不在批次中的 id 直接忽略, 结果只包含匹配上的文件; 批次中未被 order 提到的文件也会被丢弃.
// 重复的 id 只取第一次.
// 前缀为空时返回 ErrEmptyPrefix, 不修改传入的批次.
func Rename(batch *Batch, order []string, prefix string) (*Batch, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	index := make(map[string]int, batch.Len())
	if batch != nil {
		for i, f := range batch.Files {
			index[f.ID] = i
		}
	}

	result := &Batch{Files: make([]UploadedFile, 0, len(order))}
	for _, id := range order {
		i, ok := index[id]
		if !ok {
			continue
		}
		// 同一个 id 只保留第一次出现, 保证批次内 id 唯一
		delete(index, id)
		file := batch.Files[i]
		file.OriginalName = SequenceName(prefix, len(result.Files)+1, file.OriginalName)
		result.Files = append(result.Files, file)
	}
	return result, nil
}
