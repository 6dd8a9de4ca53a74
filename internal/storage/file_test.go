package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileKV_SetGet(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	_, err = kv.Get("userId")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set("userId", "user_1700000000000"))

	v, err := kv.Get("userId")
	require.NoError(t, err)
	require.Equal(t, "user_1700000000000", v)
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	kv1, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv1.Set("userId", "user_42"))
	require.NoError(t, kv1.Set("other", "value"))

	// 重新打开同一目录，相当于应用重启
	kv2, err := NewFileKV(dir)
	require.NoError(t, err)
	v, err := kv2.Get("userId")
	require.NoError(t, err)
	require.Equal(t, "user_42", v)
}

func TestFileKV_SetKeepsOtherKeys(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))

	a, err := kv.Get("a")
	require.NoError(t, err)
	require.Equal(t, "1", a)
}

func TestFileKV_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "storage.json"), []byte("not json"), 0o600))

	_, err = kv.Get("userId")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMiss)
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	_, err := kv.Get("userId")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set("userId", "user_1"))
	v, err := kv.Get("userId")
	require.NoError(t, err)
	require.Equal(t, "user_1", v)
}
