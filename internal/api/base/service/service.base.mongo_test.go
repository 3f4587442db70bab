// Package basesvc - test chuẩn hóa dữ liệu update và bảo vệ các trường hệ thống.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"name": "Mới"})
	require.NoError(t, err)

	assert.Equal(t, "Mới", update.Set["name"])
	assert.Empty(t, update.Unset)
}

func TestToUpdateData_ExistingOperatorsPreserved(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"name": "Mới"},
		"$unset": map[string]interface{}{"note": ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mới", update.Set["name"])
	assert.Contains(t, update.Unset, "note")
}

func TestToUpdateData_PassthroughUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"name": "Mới"}}
	update, err := ToUpdateData(original)
	require.NoError(t, err)

	assert.Same(t, original, update)
}

// Các trường hệ thống không bao giờ lọt qua update thông thường,
// kể cả khi client cố nhét status vào payload
func TestStripProtectedFields(t *testing.T) {
	update := &UpdateData{
		Set: map[string]interface{}{
			"name":      "Mới",
			"status":    false,
			"seqId":     int64(99),
			"createdAt": int64(0),
			"createdBy": int64(1),
			"_id":       "x",
		},
		Unset: map[string]interface{}{
			"status": "",
		},
	}

	stripProtectedFields(update)

	assert.Equal(t, map[string]interface{}{"name": "Mới"}, update.Set)
	assert.Empty(t, update.Unset)
}
