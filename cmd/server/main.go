package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"terminal-terrace/image-relay/config"
	"terminal-terrace/image-relay/internal/database"
	"terminal-terrace/image-relay/internal/middleware"
	"terminal-terrace/image-relay/internal/registry"
	"terminal-terrace/image-relay/internal/route"
	"terminal-terrace/image-relay/internal/transfer"
)

// @title Image Relay API
// @version 1.0
// @description 批量上传图片, 排序重命名后传输到 FTP 服务器
// @BasePath /
func main() {
	// `server init` 重新生成 swagger 文档
	if len(os.Args) > 1 && os.Args[1] == "init" {
		config.InitProgram()
		return
	}

	// 1. 加载配置
	config.MustLoad("config.yaml")
	conf := config.Conf
	gin.SetMode(conf.Server.Mode)

	// 2. 初始化批次存储
	store := database.InitStore()
	reg := registry.New(store)

	// 3. FTP 中继
	ftpConf := conf.FTP
	if conf.Log.Level == "debug" {
		ftpConf.Verbose = true
	}
	relay := transfer.NewRelay(
		transfer.NewFTPDialer(ftpConf, log.Writer()),
		transfer.WithTimeout(ftpConf.Timeout),
	)

	// 4. 设置路由
	r := route.SetupRouter(route.Dependencies{
		Registry:       reg,
		Relay:          relay,
		Session:        middleware.NewSession(conf.Session, conf.Server.Mode == gin.ReleaseMode),
		MaxUploadBytes: conf.Server.MaxUploadMB << 20,
		FrontendURL:    conf.FrontendURL,
	})

	// 5. 启动服务
	srv := &http.Server{
		Addr:         conf.Server.Addr(),
		Handler:      r,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}

	go func() {
		log.Printf("[image-relay] Server running on port %d", conf.Server.Port)
		log.Printf("[image-relay] Session store type: %s, scope: %s", reg.StoreName(), conf.Session.Scope)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[image-relay] Server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("[image-relay] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[image-relay] Shutdown error: %v", err)
	}
}
