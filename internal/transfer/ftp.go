package transfer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/jlaffaye/ftp"

	"terminal-terrace/image-relay/config"
)

// Conn 中继需要的 FTP 操作, *ftp.ServerConn 满足该接口
type Conn interface {
	MakeDir(path string) error
	ChangeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

// Dialer 建立并登录一个 FTP 连接
type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// FTPDialer 基于 jlaffaye/ftp 的 Dialer
type FTPDialer struct {
	conf  config.FTPConfig
	debug io.Writer
}

// NewFTPDialer debug 非空且 conf.Verbose 为 true 时输出 FTP 协议交互
func NewFTPDialer(conf config.FTPConfig, debug io.Writer) *FTPDialer {
	return &FTPDialer{conf: conf, debug: debug}
}

func (d *FTPDialer) Addr() string {
	return net.JoinHostPort(d.conf.Host, strconv.Itoa(d.conf.Port))
}

// Dial 建立并登录连接. 控制连接和数据连接都经由 socketSet 登记,
// ctx 的截止时间设置到每个 socket 上, ctx 结束时全部关闭.
func (d *FTPDialer) Dial(ctx context.Context) (Conn, error) {
	if d.conf.Host == "" {
		return nil, fmt.Errorf("未配置 FTP 主机")
	}

	sockets := &socketSet{}
	stop := context.AfterFunc(ctx, sockets.closeAll)
	release := func() {
		stop()
		sockets.closeAll()
	}

	opts := []ftp.DialOption{
		ftp.DialWithDialFunc(d.dialFunc(ctx, sockets)),
	}
	if d.conf.Secure {
		opts = append(opts, ftp.DialWithExplicitTLS(d.tlsConfig()))
	}
	if d.conf.Verbose && d.debug != nil {
		opts = append(opts, ftp.DialWithDebugOutput(d.debug))
	}

	conn, err := ftp.Dial(d.Addr(), opts...)
	if err != nil {
		release()
		return nil, fmt.Errorf("连接 %s 失败: %w", d.Addr(), err)
	}

	if err := conn.Login(d.conf.User, d.conf.Password); err != nil {
		_ = conn.Quit()
		release()
		return nil, fmt.Errorf("FTP 登录失败: %w", err)
	}
	return &ftpConn{ServerConn: conn, release: release}, nil
}

func (d *FTPDialer) tlsConfig() *tls.Config {
	// 目标服务器多为自签名证书, 不校验
	return &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         d.conf.Host,
	}
}

// dialFunc 第一次调用是控制连接, 由库在 AUTH TLS 后升级; 之后都是数据连接,
// 自定义 dialFunc 时库不会再为数据连接加 TLS.
func (d *FTPDialer) dialFunc(ctx context.Context, sockets *socketSet) func(network, address string) (net.Conn, error) {
	timeout := d.conf.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	dialer := &net.Dialer{Timeout: timeout}

	return func(network, address string) (net.Conn, error) {
		raw, err := dialer.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}
		if deadline, ok := ctx.Deadline(); ok {
			_ = raw.SetDeadline(deadline)
		}

		control, err := sockets.add(raw)
		if err != nil {
			return nil, err
		}
		if d.conf.Secure && !control {
			return tls.Client(raw, d.tlsConfig()), nil
		}
		return raw, nil
	}
}

// ftpConn Quit 之后释放本次会话打开的所有 socket
type ftpConn struct {
	*ftp.ServerConn
	release func()
}

func (c *ftpConn) Quit() error {
	defer c.release()
	return c.ServerConn.Quit()
}

// socketSet 一次会话打开的 socket, 关闭后再登记的连接直接关掉
type socketSet struct {
	mu     sync.Mutex
	conns  []net.Conn
	closed bool
}

// add 返回该连接是否为第一个（控制连接）
func (s *socketSet) add(conn net.Conn) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		_ = conn.Close()
		return false, net.ErrClosed
	}
	s.conns = append(s.conns, conn)
	return len(s.conns) == 1, nil
}

func (s *socketSet) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = nil
}
