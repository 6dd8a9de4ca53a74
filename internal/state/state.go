// Package state 应用状态：用户ID与档案/风格的派生标志
// 只由展示层在API调用成功后更新，本身不做任何网络IO
package state

import "sync"

// Snapshot 状态的一次性只读拷贝
type Snapshot struct {
	UserID         string
	HasProfile     bool
	HasPersona     bool
	CurrentPersona string
}

// Store 应用状态存储
// 不变式：HasPersona 为 true 时 CurrentPersona 非空
type Store struct {
	mu             sync.Mutex
	userID         string
	hasProfile     bool
	hasPersona     bool
	currentPersona string
}

// NewStore 以身份层产出的用户ID初始化
func NewStore(userID string) *Store {
	return &Store{userID: userID}
}

func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// SetHasProfile 档案创建/获取成功后调用
func (s *Store) SetHasProfile(has bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasProfile = has
}

// SetPersona 风格选择成功后调用，name 不能为空
func (s *Store) SetPersona(name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasPersona = true
	s.currentPersona = name
}

// ClearPersona 回到未选择状态
func (s *Store) ClearPersona() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasPersona = false
	s.currentPersona = ""
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		UserID:         s.userID,
		HasProfile:     s.hasProfile,
		HasPersona:     s.hasPersona,
		CurrentPersona: s.currentPersona,
	}
}
