package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AICARELOG_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, TransportResty, cfg.API.Transport)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AICARELOG_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("AICARELOG_BASE_URL", "https://api.example.com/api")
	t.Setenv("AICARELOG_TRANSPORT", TransportHTTP)
	t.Setenv("AICARELOG_TIMEOUT_SECONDS", "10")
	t.Setenv("AICARELOG_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, TransportHTTP, cfg.API.Transport)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api:\n  base_url: http://192.168.1.100:8000/api\n  transport: http\nlog:\n  level: warn\n",
	), 0o600))
	t.Setenv("AICARELOG_CONFIG", path)

	cfg := Load()
	assert.Equal(t, "http://192.168.1.100:8000/api", cfg.API.BaseURL)
	assert.Equal(t, TransportHTTP, cfg.API.Transport)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// 环境变量优先于配置文件
func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://from-file/api\n"), 0o600))
	t.Setenv("AICARELOG_CONFIG", path)
	t.Setenv("AICARELOG_BASE_URL", "http://from-env/api")

	cfg := Load()
	assert.Equal(t, "http://from-env/api", cfg.API.BaseURL)
}
