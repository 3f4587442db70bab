// Package basehdl - test khung envelope response.
package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	env := successEnvelope("Thành công", map[string]string{"name": "Phở Hòa"})

	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Thành công", env["message"])
	assert.Contains(t, env, "data")
	assert.Contains(t, env, "timestamp")
}

// Envelope lỗi phải mang chi tiết dưới key errors để client bắt lỗi thống nhất
func TestErrorEnvelopeShape(t *testing.T) {
	details := map[string]string{"field": "name"}
	env := errorEnvelope("VAL_001", "Dữ liệu đầu vào không hợp lệ", details)

	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Dữ liệu đầu vào không hợp lệ", env["message"])
	assert.Equal(t, details, env["errors"])
	assert.NotContains(t, env, "details")
	assert.Contains(t, env, "timestamp")
	assert.Equal(t, "VAL_001", env["code"])
}
