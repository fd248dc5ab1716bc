package upload

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/internal/dto"
	"terminal-terrace/image-relay/internal/middleware"
	"terminal-terrace/image-relay/internal/registry"
	"terminal-terrace/image-relay/packages/response"
)

type Handler struct {
	registry *registry.Registry
	maxBytes int64
}

// NewHandler maxBytes <= 0 表示不限制请求体大小
func NewHandler(reg *registry.Registry, maxBytes int64) *Handler {
	return &Handler{registry: reg, maxBytes: maxBytes}
}

// Upload 上传一批图片, 替换当前批次
// @Summary 上传文件
// @Description 以 multipart 表单上传一个或多个文件（字段名 images）, 为每个文件分配 id 并替换当前批次
// @Tags 批次
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "图片文件, 可重复"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage(fmt.Sprintf("上传内容超过 %d MB", h.maxBytes>>20)),
			))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请使用 multipart/form-data 上传文件"),
		))
		return
	}

	headers := form.File[FormField]
	if len(headers) == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未选择文件"),
		))
		return
	}

	files := make([]registry.Incoming, 0, len(headers))
	names := make([]string, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("读取文件失败: "+fh.Filename),
				response.WithError(err),
			))
			return
		}
		files = append(files, registry.Incoming{
			Name:      fh.Filename,
			Content:   data,
			MediaType: fh.Header.Get("Content-Type"),
		})
		names = append(names, fh.Filename)
	}
	log.Printf("[image-relay] Files received: %v", names)

	refs, err := h.registry.Register(c.Request.Context(), middleware.BatchKey(c), files)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.FilesResponse(c, refs)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
