package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every override so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_MODE",
		"BACKEND_BASE_URL", "BACKEND_TIMEOUT", "BACKEND_STUDENTS_PATH", "BACKEND_COURSES_PATH",
		"BACKEND_LOGIN_PATH", "BACKEND_RECONCILE_INLINE",
		"SESSION_SECRET", "SESSION_COOKIE_NAME", "SESSION_LIFETIME", "SESSION_SECURE", "SESSION_ISSUER",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaultsWithEnvSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "http://localhost:9090/api", cfg.Backend.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	require.Equal(t, "students", cfg.Backend.StudentsPath)
	require.Equal(t, "campus_session", cfg.Session.CookieName)
	require.Equal(t, "s3cret", cfg.Session.Secret)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigFileThenEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
  mode: production
backend:
  base_url: http://api.internal/v1
  timeout: 3s
  reconcile_inline: true
session:
  secret: from-file
  lifetime: 30m
logging:
  level: debug
`), 0o600))

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("SESSION_SECURE", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "9100", cfg.Server.Port)
	require.True(t, cfg.IsProduction())
	require.Equal(t, "http://api.internal/v1", cfg.Backend.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	require.True(t, cfg.Backend.ReconcileInline)
	require.Equal(t, "from-file", cfg.Session.Secret)
	require.Equal(t, 30*time.Minute, cfg.Session.Lifetime)
	require.True(t, cfg.Session.Secure)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "courses", cfg.Backend.CoursesPath, "unset keys keep defaults")
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigValidation(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig("")
	require.ErrorContains(t, err, "session secret is required")

	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("BACKEND_BASE_URL", "not a url")
	_, err = LoadConfig("")
	require.ErrorContains(t, err, "must be absolute")

	t.Setenv("BACKEND_BASE_URL", "http://localhost:9090/api")
	t.Setenv("BACKEND_TIMEOUT", "soon")
	_, err = LoadConfig("")
	require.ErrorContains(t, err, "invalid duration format")
}
