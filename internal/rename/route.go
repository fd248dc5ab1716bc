package rename

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/internal/registry"
)

func RegisterRoutes(r *gin.RouterGroup, reg *registry.Registry) {
	h := NewHandler(reg)
	r.POST("/rename", h.Rename)
}
