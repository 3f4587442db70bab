// Package models - test tính metadata phân trang.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_EmptyResult_TotalPagesFloorOne(t *testing.T) {
	p := NewPagination(1, 10, 0)

	assert.Equal(t, int64(1), p.CurrentPage)
	assert.Equal(t, int64(1), p.TotalPages, "tập rỗng vẫn được coi là có một trang")
	assert.Equal(t, int64(0), p.TotalItems)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

// 7 bản ghi, mỗi trang 5: trang 2 là trang cuối với 2 bản ghi
func TestNewPagination_SevenRecordsLimitFivePageTwo(t *testing.T) {
	p := NewPagination(2, 5, 7)

	assert.Equal(t, int64(2), p.CurrentPage)
	assert.Equal(t, int64(2), p.TotalPages)
	assert.Equal(t, int64(7), p.TotalItems)
	assert.Equal(t, int64(5), p.ItemsPerPage)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestNewPagination_ExactMultiple(t *testing.T) {
	p := NewPagination(1, 5, 10)

	assert.Equal(t, int64(2), p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestNewPagination_NormalizesBadInput(t *testing.T) {
	p := NewPagination(0, 0, 3)

	assert.Equal(t, int64(1), p.CurrentPage)
	assert.Equal(t, int64(10), p.ItemsPerPage)
	assert.Equal(t, int64(1), p.TotalPages)
}
