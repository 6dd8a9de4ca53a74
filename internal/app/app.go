// Package app 组装客户端各层：配置、日志、存储、身份、传输、API客户端、应用状态
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hmyjc/AICareLog/internal/api"
	"github.com/hmyjc/AICareLog/internal/config"
	"github.com/hmyjc/AICareLog/internal/identity"
	"github.com/hmyjc/AICareLog/internal/logger"
	"github.com/hmyjc/AICareLog/internal/state"
	"github.com/hmyjc/AICareLog/internal/storage"
	"github.com/hmyjc/AICareLog/internal/transport"
)

// App 显式传递给展示层的应用上下文，不使用隐藏单例
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Client *api.Client
	State  *state.Store
}

// New 按配置组装应用
// 持久化存储不可用时降级为内存存储（身份仅本会话有效），不阻止启动
func New(cfg *config.Config, indicator transport.Indicator) (*App, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	var kv storage.KV
	fileKV, err := storage.NewFileKV(cfg.Storage.Dir)
	if err != nil {
		log.Warn("本地存储不可用，身份仅本会话有效", zap.Error(err))
		kv = storage.NewMemoryKV()
	} else {
		kv = fileKV
	}

	userID := identity.NewStore(kv, log).GetOrCreateUserID()

	var t transport.Transport
	switch cfg.API.Transport {
	case config.TransportHTTP:
		t = transport.NewHTTPTransport(cfg.API.BaseURL, cfg.Timeout(), indicator, log)
	case config.TransportResty:
		t = transport.NewRestyTransport(cfg.API.BaseURL, cfg.Timeout(), indicator, log)
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.API.Transport)
	}

	return &App{
		Config: cfg,
		Logger: log,
		Client: api.NewClient(t, log),
		State:  state.NewStore(userID),
	}, nil
}
