// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if envErr := godotenv.Load(); envErr != nil {
			log.Printf("警告: 无法加载 .env 文件: %v", envErr)
		}

		k = koanf.New(".")
		err = load(configPath)
	})

	return err
}

func load(configPath string) error {
	// 1. 加载配置文件
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	// 2. 加载标准环境变量（APP_ 前缀）
	// 例如：APP_FTP_HOST -> ftp.host
	if err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "APP_")), "_", ".", -1)
	}), nil); err != nil {
		log.Printf("加载环境变量失败: %v", err)
	}

	// 3. 加载简化的环境变量名
	loadCustomEnvVars(k)

	// 4. 解析到结构体
	conf := &AppConfig{}
	if err := k.Unmarshal("", conf); err != nil {
		return fmt.Errorf("解析配置失败: %w", err)
	}

	// 5. 默认值与时间单位
	applyDefaults(conf)

	// 6. 验证配置
	if err := validateConfig(conf); err != nil {
		return err
	}

	Conf = conf
	return nil
}

// loadCustomEnvVars 加载自定义环境变量名（与部署脚本保持一致）
func loadCustomEnvVars(k *koanf.Koanf) {
	mapping := map[string]string{
		"PORT":           "server.port",
		"GIN_MODE":       "server.mode",
		"FTP_HOST":       "ftp.host",
		"FTP_PORT":       "ftp.port",
		"FTP_USER":       "ftp.user",
		"FTP_PASSWORD":   "ftp.password",
		"SESSION_SECRET": "session.secret",
		"REDIS_HOST":     "redis.host",
		"REDIS_PORT":     "redis.port",
		"REDIS_PASSWORD": "redis.password",
		"LOG_LEVEL":      "log.level",
		// 前端 URL（用于 CORS）
		"FRONTEND_URL": "frontend_url",
	}
	for name, key := range mapping {
		if v := os.Getenv(name); v != "" {
			k.Set(key, v)
		}
	}

	if v := os.Getenv("FTP_SECURE"); v != "" {
		k.Set("ftp.secure", v == "true")
	}
	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		k.Set("redis.enabled", v == "true")
	}
}

// applyDefaults 填充缺省值, 并把秒转换为 time.Duration
func applyDefaults(conf *AppConfig) {
	if conf.Server.Port == 0 {
		conf.Server.Port = 3000
	}
	if conf.Server.Mode == "" {
		conf.Server.Mode = "debug"
	}
	if conf.Server.MaxUploadMB == 0 {
		conf.Server.MaxUploadMB = 32
	}
	conf.Server.ReadTimeout = conf.Server.ReadTimeout * time.Second
	conf.Server.WriteTimeout = conf.Server.WriteTimeout * time.Second

	if conf.Session.CookieName == "" {
		conf.Session.CookieName = "relay_session"
	}
	if conf.Session.MaxAge == 0 {
		conf.Session.MaxAge = 24 * 60 * 60
	}
	if conf.Session.Scope == "" {
		conf.Session.Scope = ScopeSession
	}

	if conf.FTP.Port == 0 {
		conf.FTP.Port = 21
	}
	if conf.FTP.Timeout == 0 {
		conf.FTP.Timeout = 30
	}
	conf.FTP.Timeout = conf.FTP.Timeout * time.Second
}

// validateConfig 验证配置的有效性
func validateConfig(conf *AppConfig) error {
	if conf.Session.Scope != ScopeSession && conf.Session.Scope != ScopeGlobal {
		return fmt.Errorf("session.scope 只能是 %s 或 %s, 当前为 %q", ScopeSession, ScopeGlobal, conf.Session.Scope)
	}

	if conf.Session.Secret == "" {
		log.Println("⚠️  Warning: session.secret is empty, please set SESSION_SECRET environment variable")
		conf.Session.Secret = "replace_with_a_strong_secret"
	}

	if conf.FTP.Host == "" {
		log.Println("⚠️  Warning: ftp.host is empty, please set FTP_HOST environment variable")
	}

	return nil
}

// MustLoad 加载配置，失败则 panic
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}

// GetString 获取字符串配置
func GetString(key string) string {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.String(key)
}

// Reload 重新加载配置
func Reload(configPath string) error {
	if k == nil {
		return fmt.Errorf("配置未初始化")
	}

	k = koanf.New(".")
	return load(configPath)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
