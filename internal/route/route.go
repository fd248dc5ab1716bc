package route

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "terminal-terrace/image-relay/docs"
	"terminal-terrace/image-relay/internal/middleware"
	"terminal-terrace/image-relay/internal/registry"
	"terminal-terrace/image-relay/internal/rename"
	"terminal-terrace/image-relay/internal/transfer"
	"terminal-terrace/image-relay/internal/upload"
	"terminal-terrace/image-relay/web"
)

// Dependencies 路由需要的依赖
type Dependencies struct {
	Registry       *registry.Registry
	Relay          *transfer.Relay
	Session        *middleware.Session
	MaxUploadBytes int64
	FrontendURL    string
}

func initRoute(r *gin.Engine, deps Dependencies) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "store": deps.Registry.StoreName()})
	})

	// 前端页面
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
	r.StaticFS("/assets", http.FS(web.Assets()))

	// 批次接口, 需要会话
	api := r.Group("/", deps.Session.Handler())
	{
		upload.RegisterRoutes(api, deps.Registry, deps.MaxUploadBytes)
		rename.RegisterRoutes(api, deps.Registry)
		transfer.RegisterRoutes(api, deps.Registry, deps.Relay)
	}
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()
	if deps.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = deps.MaxUploadBytes
	}

	// 允许的前端来源
	allowedOrigins := []string{"http://localhost:3000"}
	if deps.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, deps.FrontendURL)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	initRoute(r, deps)

	return r
}
