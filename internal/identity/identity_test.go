package identity

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmyjc/AICareLog/internal/storage"
)

var userIDPattern = regexp.MustCompile(`^user_\d+$`)

// brokenKV 读写都失败的存储
type brokenKV struct{}

func (brokenKV) Get(string) (string, error) { return "", errors.New("storage unreadable") }
func (brokenKV) Set(string, string) error   { return errors.New("storage unwritable") }

func TestGetOrCreateUserID_GeneratesAndPersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewStore(kv, zap.NewNop())

	id := s.GetOrCreateUserID()
	require.Regexp(t, userIDPattern, id)

	// 同一会话内重复调用返回同一个值
	require.Equal(t, id, s.GetOrCreateUserID())

	// 已持久化：新的 Store 实例（模拟重启）读到同一个ID
	s2 := NewStore(kv, zap.NewNop())
	require.Equal(t, id, s2.GetOrCreateUserID())
}

func TestGetOrCreateUserID_ReturnsStoredValue(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set("userId", "user_1699999999999"))

	s := NewStore(kv, zap.NewNop())
	require.Equal(t, "user_1699999999999", s.GetOrCreateUserID())
}

func TestGetOrCreateUserID_StorageFailureFallsBack(t *testing.T) {
	s := NewStore(brokenKV{}, zap.NewNop())

	id := s.GetOrCreateUserID()
	require.Regexp(t, userIDPattern, id)
	// 降级后本会话内仍然稳定
	require.Equal(t, id, s.GetOrCreateUserID())
}

func TestGetOrCreateUserID_WriteFailureStillReturnsID(t *testing.T) {
	kv := &writeFailKV{MemoryKV: storage.NewMemoryKV()}
	s := NewStore(kv, zap.NewNop())

	id := s.GetOrCreateUserID()
	require.Regexp(t, userIDPattern, id)
	require.Equal(t, id, s.GetOrCreateUserID())
}

type writeFailKV struct {
	*storage.MemoryKV
}

func (w *writeFailKV) Set(string, string) error { return errors.New("disk full") }
