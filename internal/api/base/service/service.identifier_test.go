// Package basesvc - test phân loại định danh bản ghi từ path param.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food_market/internal/common"
)

func TestClassifyIdentifier_ObjectID(t *testing.T) {
	assert.Equal(t, IdentifierObjectID, ClassifyIdentifier("507f1f77bcf86cd799439011"))
	assert.Equal(t, IdentifierObjectID, ClassifyIdentifier("ffffffffffffffffffffffff"))
}

func TestClassifyIdentifier_Sequence(t *testing.T) {
	assert.Equal(t, IdentifierSequence, ClassifyIdentifier("1"))
	assert.Equal(t, IdentifierSequence, ClassifyIdentifier("42"))
	assert.Equal(t, IdentifierSequence, ClassifyIdentifier("9223372036854775807"))
}

// Chuỗi 24 chữ số vừa là hex hợp lệ vừa là số; ObjectID phải được ưu tiên
func TestClassifyIdentifier_AllDigits24Chars_IsObjectID(t *testing.T) {
	raw := "123456789012345678901234"
	require.Len(t, raw, 24)
	assert.Equal(t, IdentifierObjectID, ClassifyIdentifier(raw))
}

func TestClassifyIdentifier_Invalid(t *testing.T) {
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier(""))
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("abc"))
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("12.5"))
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("507f1f77bcf86cd79943901"))   // 23 hex
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("507f1f77bcf86cd7994390111")) // 25 hex
}

// ParseInt chấp nhận "-5"/"+5" nhưng khóa tuần tự chỉ gồm chữ số
func TestClassifyIdentifier_SignedNumbersRejected(t *testing.T) {
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("-5"))
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("+5"))
	assert.Equal(t, IdentifierInvalid, ClassifyIdentifier("-0"))
}

func TestBuildIdentifierFilter_ObjectID(t *testing.T) {
	raw := "507f1f77bcf86cd799439011"
	filter, err := BuildIdentifierFilter(raw)
	require.NoError(t, err)

	oid, ok := filter["_id"].(primitive.ObjectID)
	require.True(t, ok, "filter phải tra cứu theo _id")
	assert.Equal(t, raw, oid.Hex())
	assert.NotContains(t, filter, "seqId")
}

func TestBuildIdentifierFilter_Sequence(t *testing.T) {
	filter, err := BuildIdentifierFilter("42")
	require.NoError(t, err)

	assert.Equal(t, int64(42), filter["seqId"])
	assert.NotContains(t, filter, "_id")
}

func TestBuildIdentifierFilter_Invalid(t *testing.T) {
	filter, err := BuildIdentifierFilter("not-an-id")
	assert.Nil(t, filter)
	assert.ErrorIs(t, err, common.ErrInvalidIdentifier)
}
