package config

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

const swagTimeout = 2 * time.Minute

// swagArgs 生成 docs 包的 swag 参数
func swagArgs(entry, output string) []string {
	return []string{
		"run",
		"github.com/swaggo/swag/cmd/swag@v1.16.6",
		"init",
		"-g", entry,
		"-o", output,
		"--parseInternal",
	}
}

func generateSwaggerDocs(ctx context.Context) error {
	log.Println("[image-relay] Generating swagger docs")

	ctx, cancel := context.WithTimeout(ctx, swagTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", swagArgs("cmd/server/main.go", "docs")...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("swag init: %w; stdout: %s; stderr: %s",
			err, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()))
	}

	log.Println("[image-relay] swagger docs generated")
	return nil
}

// InitProgram 通过 `server init` 重新生成接口文档
func InitProgram() {
	if err := generateSwaggerDocs(context.Background()); err != nil {
		log.Panicf("Fail to generate swagger docs: %v", err)
	}
}
