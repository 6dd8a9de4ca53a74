package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config AICareLog 客户端配置
// 环境变量优先于配置文件，配置文件优先于默认值
type Config struct {
	API struct {
		// BaseURL 后端服务地址（本地开发和生产环境不同）
		BaseURL string `yaml:"base_url"`
		// Transport HTTP 实现："resty" 或 "http"
		Transport      string `yaml:"transport"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Storage struct {
		// Dir 本地键值存储目录（默认 ~/.aicarelog）
		Dir string `yaml:"dir"`
	} `yaml:"storage"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

const (
	DefaultBaseURL = "http://localhost:8000/api"

	TransportResty = "resty"
	TransportHTTP  = "http"
)

// Load 加载配置：默认值 ← 配置文件 ← 环境变量
func Load() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = DefaultBaseURL
	cfg.API.Transport = TransportResty
	cfg.API.TimeoutSeconds = 30
	cfg.Storage.Dir = defaultStorageDir()
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"

	if path := configFilePath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// 配置文件损坏时忽略，保持默认值即可启动
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.API.BaseURL = getEnv("AICARELOG_BASE_URL", cfg.API.BaseURL)
	cfg.API.Transport = getEnv("AICARELOG_TRANSPORT", cfg.API.Transport)
	cfg.API.TimeoutSeconds = parseInt(getEnv("AICARELOG_TIMEOUT_SECONDS", ""), cfg.API.TimeoutSeconds)
	cfg.Storage.Dir = getEnv("AICARELOG_STORAGE_DIR", cfg.Storage.Dir)
	cfg.Log.Level = getEnv("AICARELOG_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("AICARELOG_LOG_FORMAT", cfg.Log.Format)

	return cfg
}

// Timeout 请求超时
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// configFilePath 配置文件路径：$AICARELOG_CONFIG 或 ~/.aicarelog/config.yaml
func configFilePath() string {
	if p := os.Getenv("AICARELOG_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aicarelog", "config.yaml")
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aicarelog"
	}
	return filepath.Join(home, ".aicarelog")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
