package transfer

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/internal/registry"
)

func RegisterRoutes(r *gin.RouterGroup, reg *registry.Registry, relay *Relay) {
	h := NewHandler(reg, relay)
	r.POST("/ftp-upload", h.Upload)
}
