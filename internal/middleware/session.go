package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"terminal-terrace/image-relay/config"
	"terminal-terrace/image-relay/internal/dto"
	"terminal-terrace/image-relay/packages/response"
)

const (
	// gin 上下文中保存批次 key 的键名
	batchKeyName = "batch_key"
	// 全局模式下所有请求共用的批次 key
	GlobalBatchKey = "global"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session expired")
)

// SessionClaims 会话 cookie 载荷, 只包含不透明的会话 id
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Session 会话中间件, 为每个浏览器分配会话 id 并决定请求使用哪个批次
type Session struct {
	secret     []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
	scope      string
	method     jwt.SigningMethod
	now        func() time.Time
}

// NewSession secure 为 true 时 cookie 只在 HTTPS 下发送
func NewSession(conf config.SessionConfig, secure bool) *Session {
	return &Session{
		secret:     []byte(conf.Secret),
		cookieName: conf.CookieName,
		maxAge:     time.Duration(conf.MaxAge) * time.Second,
		secure:     secure,
		scope:      conf.Scope,
		method:     jwt.SigningMethodHS256,
		now:        time.Now,
	}
}

// Handler 解析会话 cookie, 无效或缺失时签发新会话
func (s *Session) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.scope == config.ScopeGlobal {
			c.Set(batchKeyName, GlobalBatchKey)
			c.Next()
			return
		}

		sid := ""
		if token, err := c.Cookie(s.cookieName); err == nil && token != "" {
			if claims, err := s.Parse(token); err == nil {
				sid = claims.SessionID
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			token, err := s.Issue(sid)
			if err != nil {
				dto.ErrorResponse(c, response.NewBusinessError(
					response.WithErrorCode(response.Fail),
					response.WithErrorMessage("创建会话失败"),
					response.WithError(err),
				))
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(s.cookieName, token, int(s.maxAge.Seconds()), "/", "", s.secure, true)
		}

		c.Set(batchKeyName, sid)
		c.Next()
	}
}

// Issue 为会话 id 签发 cookie 值
func (s *Session) Issue(sid string) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Parse 校验 cookie 值并取出会话
func (s *Session) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.SessionID != "" {
		return claims, nil
	}
	return nil, ErrInvalidSession
}

// BatchKey 当前请求对应的批次 key
func BatchKey(c *gin.Context) string {
	if v, ok := c.Get(batchKeyName); ok {
		if key, ok := v.(string); ok {
			return key
		}
	}
	return GlobalBatchKey
}
