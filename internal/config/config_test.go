package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go_5_course_track/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9090"
database:
  url: "postgres://u:p@db:5432/course_track"
app:
  progress_max_retries: 8
auth:
  enabled: true
jwt:
  secret_key: "secret"
  access_token_ttl: "30m"
mailer:
  type: "ses"
`)

	require.NoError(t, config.LoadConfig(dir))

	cfg := config.Cfg
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db:5432/course_track", cfg.Database.URL)
	assert.Equal(t, 8, cfg.App.ProgressMaxRetries)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "ses", cfg.Mailer.Type)
	// ファイルに無い項目はデフォルト
	assert.Equal(t, config.AppName, cfg.App.Name)
	assert.Equal(t, config.DefaultCORSAllowedOrigins, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
auth:
  enabled: false
app:
  progress_max_retries: 0
`)

	require.NoError(t, config.LoadConfig(dir))

	assert.Equal(t, config.DefaultServerPort, config.Cfg.Server.Port)
	assert.Equal(t, config.DefaultProgressMaxRetries, config.Cfg.App.ProgressMaxRetries)
	assert.Equal(t, config.DefaultAccessTokenTTL, config.Cfg.JWT.AccessTokenTTL)
	assert.Equal(t, config.DefaultMailerType, config.Cfg.Mailer.Type)
	assert.False(t, config.Cfg.Auth.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9090"
auth:
  enabled: true
jwt:
  secret_key: "from-file"
`)
	t.Setenv("APP_SERVER_PORT", ":7070")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "postgres://env/course_track")

	require.NoError(t, config.LoadConfig(dir))

	assert.Equal(t, ":7070", config.Cfg.Server.Port)
	assert.Equal(t, "from-env", config.Cfg.JWT.SecretKey)
	assert.Equal(t, "postgres://env/course_track", config.Cfg.Database.URL)
}

func TestLoadConfig_AuthRequiresSecret(t *testing.T) {
	dir := writeConfig(t, `
auth:
  enabled: true
jwt:
  secret_key: ""
`)

	err := config.LoadConfig(dir)
	assert.Error(t, err)
}
