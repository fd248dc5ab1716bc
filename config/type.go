package config

import "time"

// AppConfig 应用配置结构
type AppConfig struct {
	Server      ServerConfig  `koanf:"server"`
	Redis       RedisConfig   `koanf:"redis"`
	Session     SessionConfig `koanf:"session"`
	FTP         FTPConfig     `koanf:"ftp"`
	Log         LogConfig     `koanf:"log"`
	FrontendURL string        `koanf:"frontend_url"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	MaxUploadMB  int64         `koanf:"max_upload_mb"`
}

type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

// 批次作用域
const (
	ScopeSession = "session" // 每个浏览器会话一个批次
	ScopeGlobal  = "global"  // 整个进程共用一个批次
)

type SessionConfig struct {
	Secret     string `koanf:"secret"`
	CookieName string `koanf:"cookie_name"`
	MaxAge     int    `koanf:"max_age"` // 秒
	Scope      string `koanf:"scope"`   // session, global
}

type FTPConfig struct {
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	User     string        `koanf:"user"`
	Password string        `koanf:"password"`
	Secure   bool          `koanf:"secure"`
	Timeout  time.Duration `koanf:"timeout"` // 秒
	Verbose  bool          `koanf:"verbose"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return s.Host + ":" + itoa(s.Port)
}
