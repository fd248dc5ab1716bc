package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadFresh(t *testing.T, path string) error {
	t.Helper()
	k = koanf.New(".")
	t.Cleanup(func() { Conf = nil })
	return load(path)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
session:
  secret: s3cret
ftp:
  host: ftp.example.com
`)
	require.NoError(t, loadFresh(t, path))

	assert.Equal(t, 3000, Conf.Server.Port)
	assert.Equal(t, "debug", Conf.Server.Mode)
	assert.Equal(t, int64(32), Conf.Server.MaxUploadMB)
	assert.Equal(t, ScopeSession, Conf.Session.Scope)
	assert.Equal(t, "relay_session", Conf.Session.CookieName)
	assert.Equal(t, 21, Conf.FTP.Port)
	assert.Equal(t, 30*time.Second, Conf.FTP.Timeout)
	assert.Equal(t, ":3000", Conf.Server.Addr())
}

func TestLoadConvertsSeconds(t *testing.T) {
	path := writeConfig(t, `
server:
  read_timeout: 5
  write_timeout: 7
ftp:
  timeout: 12
`)
	require.NoError(t, loadFresh(t, path))

	assert.Equal(t, 5*time.Second, Conf.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, Conf.Server.WriteTimeout)
	assert.Equal(t, 12*time.Second, Conf.FTP.Timeout)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 3000
ftp:
  host: from-file
  secure: true
session:
  scope: session
`)
	t.Setenv("PORT", "8088")
	t.Setenv("FTP_HOST", "from-env")
	t.Setenv("FTP_SECURE", "false")
	t.Setenv("APP_SESSION_SCOPE", "global")

	require.NoError(t, loadFresh(t, path))

	assert.Equal(t, 8088, Conf.Server.Port)
	assert.Equal(t, "from-env", Conf.FTP.Host)
	assert.False(t, Conf.FTP.Secure)
	assert.Equal(t, ScopeGlobal, Conf.Session.Scope)
}

func TestEmptySecretGetsPlaceholder(t *testing.T) {
	require.NoError(t, loadFresh(t, writeConfig(t, "session:\n  scope: session\n")))
	assert.NotEmpty(t, Conf.Session.Secret)
}

func TestInvalidScope(t *testing.T) {
	err := loadFresh(t, writeConfig(t, "session:\n  scope: tab\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.scope")
}

func TestMissingFile(t *testing.T) {
	err := loadFresh(t, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	path := writeConfig(t, "ftp:\n  host: first\n")
	require.NoError(t, loadFresh(t, path))
	assert.Equal(t, "first", GetString("ftp.host"))

	require.NoError(t, os.WriteFile(path, []byte("ftp:\n  host: second\n"), 0o644))
	require.NoError(t, Reload(path))
	assert.Equal(t, "second", Conf.FTP.Host)
}

func TestSwagArgs(t *testing.T) {
	args := swagArgs("cmd/server/main.go", "docs")
	assert.Contains(t, args, "init")
	assert.Equal(t, []string{"-g", "cmd/server/main.go"}, args[3:5])
}
