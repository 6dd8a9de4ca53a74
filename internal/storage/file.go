package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV 文件实现：storage.json 保存为单个 JSON 对象
// 写入采用临时文件 + rename，避免中断时留下半写状态
type FileKV struct {
	path string
	mu   sync.Mutex
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileKV{path: filepath.Join(dir, "storage.json")}, nil
}

func (f *FileKV) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (f *FileKV) Set(key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	data[key] = value

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (f *FileKV) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode storage: %w", err)
	}
	return data, nil
}
