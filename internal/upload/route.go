package upload

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/internal/registry"
)

func RegisterRoutes(r *gin.RouterGroup, reg *registry.Registry, maxBytes int64) {
	h := NewHandler(reg, maxBytes)
	r.POST("/upload", h.Upload)
}
