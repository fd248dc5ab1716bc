package transfer

import (
	"errors"
	"io"
	"log"

	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/internal/dto"
	"terminal-terrace/image-relay/internal/middleware"
	"terminal-terrace/image-relay/internal/registry"
)

type Handler struct {
	registry *registry.Registry
	relay    *Relay
}

func NewHandler(reg *registry.Registry, relay *Relay) *Handler {
	return &Handler{registry: reg, relay: relay}
}

// Upload 把当前批次推送到 FTP
// @Summary FTP 传输
// @Description 按当前批次顺序逐个上传到配置的 FTP 服务器. 任一文件失败即中止, 已上传的文件不会回滚
// @Tags 批次
// @Accept json
// @Produce json
// @Param request body TransferRequest false "客户端当前列表（仅供参考）"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /ftp-upload [post]
func (h *Handler) Upload(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		dto.ValidationErrorResponse(c, err)
		return
	}

	batch, err := h.registry.Batch(c.Request.Context(), middleware.BatchKey(c))
	if err != nil {
		dto.Error(c, err)
		return
	}
	if len(req.Files) != batch.Len() {
		log.Printf("[image-relay] client listed %d files, batch holds %d", len(req.Files), batch.Len())
	}

	result, err := h.relay.Transfer(c.Request.Context(), batch)
	if err != nil {
		log.Printf("[image-relay] FTP transfer aborted after %d/%d files", len(result.Uploaded), batch.Len())
		dto.Error(c, err)
		return
	}

	dto.MessageResponse(c, "文件已上传到 "+result.Location())
}
