package rename

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/internal/dto"
	"terminal-terrace/image-relay/internal/middleware"
	"terminal-terrace/image-relay/internal/registry"
)

type Handler struct {
	registry *registry.Registry
}

func NewHandler(reg *registry.Registry) *Handler {
	return &Handler{registry: reg}
}

// Rename 按客户端顺序重排当前批次并重命名
// @Summary 批量重命名
// @Description 按 files 中的 id 顺序重排批次, 文件名改为 <prefix>__<序号><扩展名>. 不在批次中的 id 会被忽略
// @Tags 批次
// @Accept json
// @Produce json
// @Param request body RenameRequest true "新的顺序和前缀"
// @Success 200 {object} RenameResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /rename [post]
func (h *Handler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	files, err := h.registry.ReorderAndRename(c.Request.Context(), middleware.BatchKey(c), req.IDs(), req.Prefix)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.RenameResponse(c, files)
}
