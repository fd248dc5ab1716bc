package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/image-relay/config"
)

func newTestSession(scope string) *Session {
	return NewSession(config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "relay_session",
		MaxAge:     3600,
		Scope:      scope,
	}, false)
}

func TestIssueAndParse(t *testing.T) {
	s := newTestSession(config.ScopeSession)

	token, err := s.Issue("sid-1")
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestParseExpired(t *testing.T) {
	s := newTestSession(config.ScopeSession)
	issuedAt := time.Now()
	s.now = func() time.Time { return issuedAt }

	token, err := s.Issue("sid-1")
	require.NoError(t, err)

	s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredSession)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	s := newTestSession(config.ScopeSession)

	other := newTestSession(config.ScopeSession)
	other.secret = []byte("another-secret")
	forged, err := other.Issue("sid-1")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{SessionID: "sid-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	empty, err := s.Issue("")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": forged,
		"alg none":     none,
		"empty sid":    empty,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func serve(s *Session, cookie *http.Cookie) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var key string
	r.GET("/", s.Handler(), func(c *gin.Context) {
		key = BatchKey(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, key
}

func TestHandlerIssuesSession(t *testing.T) {
	s := newTestSession(config.ScopeSession)

	w, key := serve(s, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, key)
	assert.NotEqual(t, GlobalBatchKey, key)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "relay_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// 带上 cookie 后沿用同一个会话, 不再下发
	w, again := serve(s, cookies[0])
	assert.Equal(t, key, again)
	assert.Empty(t, w.Result().Cookies())
}

func TestHandlerReplacesInvalidCookie(t *testing.T) {
	s := newTestSession(config.ScopeSession)

	w, key := serve(s, &http.Cookie{Name: "relay_session", Value: "tampered"})
	assert.NotEmpty(t, key)
	require.Len(t, w.Result().Cookies(), 1)
}

func TestHandlerIssueFailure(t *testing.T) {
	s := newTestSession(config.ScopeSession)
	// []byte 密钥不能用于 RS256, 签发必然失败
	s.method = jwt.SigningMethodRS256

	w, key := serve(s, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, key)
	assert.Empty(t, w.Result().Cookies())

	var body struct {
		Error   string `json:"error"`
		Details struct {
			Code int    `json:"code"`
			Name string `json:"name"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "创建会话失败", body.Error)
	assert.Equal(t, 0, body.Details.Code)
	assert.Equal(t, "InternalError", body.Details.Name)
}

func TestHandlerGlobalScope(t *testing.T) {
	s := newTestSession(config.ScopeGlobal)

	w, key := serve(s, nil)
	assert.Equal(t, GlobalBatchKey, key)
	assert.Empty(t, w.Result().Cookies())
}

func TestBatchKeyWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, GlobalBatchKey, BatchKey(c))
}
