// Package transfer 把当前批次按顺序逐个推送到远端 FTP
package transfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"terminal-terrace/image-relay/internal/registry"
	"terminal-terrace/image-relay/packages/response"
)

const (
	// 远端目录名前缀
	DirPrefix = "uploads_"
	// 默认整体超时
	DefaultTimeout = 30 * time.Second
)

// Result 一次传输的结果
type Result struct {
	// Dir 实际使用的远端目录, 建目录失败时为空（连接默认目录）
	Dir string
	// Uploaded 已成功上传的文件名, 按上传顺序
	Uploaded []string
}

// Location 供提示信息使用的目录描述
func (r *Result) Location() string {
	if r == nil || r.Dir == "" {
		return "根目录"
	}
	return r.Dir
}

type Relay struct {
	dialer  Dialer
	timeout time.Duration
	now     func() time.Time
	makeDir bool
}

type Option func(*Relay)

// WithTimeout 整个传输（含连接）的超时
func WithTimeout(d time.Duration) Option {
	return func(r *Relay) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithClock 替换时间源（测试用）
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// WithoutDirectory 直接上传到连接默认目录
func WithoutDirectory() Option {
	return func(r *Relay) {
		r.makeDir = false
	}
}

func NewRelay(dialer Dialer, opts ...Option) *Relay {
	r := &Relay{
		dialer:  dialer,
		timeout: DefaultTimeout,
		now:     time.Now,
		makeDir: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DirName uploads_<ISO 时间戳>, 其中 ':' 和 '.' 替换为 '-'
func DirName(t time.Time) string {
	stamp := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return DirPrefix + strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
}

// Transfer 建立一个连接, 尝试创建时间戳目录, 然后按批次顺序逐个上传.
// 任一文件失败即中止, 已上传的文件保留在远端. 连接在返回前总会关闭.
// 出错时也返回已完成部分的 Result.
func (r *Relay) Transfer(ctx context.Context, batch *registry.Batch) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := &Result{Uploaded: []string{}}
	if batch == nil {
		batch = &registry.Batch{}
	}

	log.Printf("[image-relay] Attempting FTP connection to remote server")
	conn, err := r.dialer.Dial(ctx)
	if err != nil {
		return result, transferError("FTP 连接失败", err)
	}
	log.Printf("[image-relay] FTP Connection successful")

	// 超时后关闭连接, 打断阻塞中的传输
	var once sync.Once
	closeConn := func() {
		once.Do(func() {
			if err := conn.Quit(); err != nil {
				log.Printf("[image-relay] FTP quit: %v", err)
			}
			log.Printf("[image-relay] FTP Connection closed")
		})
	}
	stop := context.AfterFunc(ctx, closeConn)
	defer func() {
		stop()
		closeConn()
	}()

	if r.makeDir {
		dir := DirName(r.now())
		if err := enterDir(conn, dir); err != nil {
			log.Printf("[image-relay] Directory creation failed, using root directory: %v", err)
		} else {
			result.Dir = dir
		}
	}

	for _, f := range batch.Files {
		if err := ctx.Err(); err != nil {
			return result, transferError("FTP 传输超时", err)
		}

		log.Printf("[image-relay] Starting upload of: %s", f.OriginalName)
		if err := conn.Stor(f.OriginalName, bytes.NewReader(f.Content)); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = errors.Join(err, ctxErr)
			}
			return result, transferError(fmt.Sprintf("上传 %s 失败", f.OriginalName), err)
		}
		result.Uploaded = append(result.Uploaded, f.OriginalName)
		log.Printf("[image-relay] Completed upload of: %s", f.OriginalName)
	}

	return result, nil
}

func enterDir(conn Conn, dir string) error {
	if err := conn.MakeDir(dir); err != nil {
		return err
	}
	return conn.ChangeDir(dir)
}

func transferError(msg string, err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.TransferFailed),
		response.WithErrorMessage(msg+": "+err.Error()),
		response.WithError(err),
	)
}
