// Package identity 匿名用户身份：首次启动生成，之后在本机保持不变
package identity

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hmyjc/AICareLog/internal/storage"
)

const storageKey = "userId"

// Store 负责生成并持久化匿名用户ID
// 同一安装内多次调用 GetOrCreateUserID 返回同一个值
type Store struct {
	kv     storage.KV
	logger *zap.Logger

	cached string
}

func NewStore(kv storage.KV, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// GetOrCreateUserID 读取持久化的用户ID；不存在则生成并写回
// 存储读写失败时降级为本会话临时ID（记录日志，不中断使用）
func (s *Store) GetOrCreateUserID() string {
	if s.cached != "" {
		return s.cached
	}

	id, err := s.kv.Get(storageKey)
	if err == nil && id != "" {
		s.cached = id
		return id
	}
	if err != nil && err != storage.ErrMiss {
		s.logger.Warn("读取userId失败，使用会话级临时ID", zap.Error(err))
		s.cached = newUserID()
		return s.cached
	}

	id = newUserID()
	if err := s.kv.Set(storageKey, id); err != nil {
		s.logger.Warn("持久化userId失败，ID仅本会话有效", zap.Error(err))
	}
	s.cached = id
	return id
}

// newUserID 与前端约定一致："user_" + 毫秒时间戳
func newUserID() string {
	return fmt.Sprintf("user_%d", time.Now().UnixMilli())
}
