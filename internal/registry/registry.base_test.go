// Package registry - test registry generic thread-safe.
package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_NewAndOverwrite(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "một")
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("a", "hai")
	require.NoError(t, err)
	assert.False(t, isNew, "đăng ký lại cùng tên là ghi đè")

	item, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, "hai", item)
}

func TestRegister_EmptyNameRejected(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestGet_Missing(t *testing.T) {
	r := NewRegistry[int]()

	item, exists := r.Get("missing")
	assert.False(t, exists)
	assert.Zero(t, item)
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	created := 0

	item, err := r.GetOrCreate("x", func() (int, error) {
		created++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần hai trả về item đã có, creator không chạy lại
	item, err = r.GetOrCreate("x", func() (int, error) {
		created++
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, created)
}

func TestGetOrCreate_CreatorError(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.GetOrCreate("x", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.Error(t, err)

	_, exists := r.Get("x")
	assert.False(t, exists, "item lỗi không được lưu vào registry")
}

func TestClear_WithCleanup(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("a", "một")
	require.NoError(t, err)

	cleaned := ""
	deleted, err := r.Clear("a", func(item string) error {
		cleaned = item
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "một", cleaned)

	_, exists := r.Get("a")
	assert.False(t, exists)
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}
