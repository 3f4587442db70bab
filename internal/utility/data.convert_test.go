// Package utility - test ép kiểu giá trị động về int64.
package utility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64_IntegerKinds(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  int64
	}{
		{"int", int(7), 7},
		{"int32", int32(7), 7},
		{"int64", int64(7), 7},
		{"float64 nguyên", float64(7), 7},
		{"json.Number", json.Number("7"), 7},
		{"chuỗi số", "7", 7},
		{"số âm", int64(-3), -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToInt64(tc.value)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToInt64_Rejected(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
	}{
		{"float64 có phần thập phân", float64(7.5)},
		{"chuỗi không phải số", "abc"},
		{"nil", nil},
		{"bool", true},
		{"map", map[string]interface{}{}},
		{"json.Number thập phân", json.Number("7.5")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ToInt64(tc.value)
			assert.False(t, ok)
		})
	}
}
