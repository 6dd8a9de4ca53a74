package storage

import "errors"

// ErrMiss 键不存在
var ErrMiss = errors.New("storage miss")

// KV 平台键值存储抽象（浏览器 localStorage / 小程序 Storage 的等价物）
type KV interface {
	Get(key string) (string, error)
	Set(key string, value string) error
}
