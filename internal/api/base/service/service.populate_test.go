// Package basesvc - test populate tham chiếu numeric với lookup giả lập.
package basesvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup trả về dữ liệu cố định và ghi lại các lần gọi
type fakeLookup struct {
	data  map[string]map[int64]map[string]interface{} // collection -> seqId -> doc
	calls []fakeLookupCall
	err   error
}

type fakeLookupCall struct {
	collection string
	seqIds     []int64
}

func (f *fakeLookup) fn(ctx context.Context, collection string, seqIds []int64) (map[int64]map[string]interface{}, error) {
	f.calls = append(f.calls, fakeLookupCall{collection: collection, seqIds: seqIds})
	if f.err != nil {
		return nil, f.err
	}
	return f.data[collection], nil
}

func TestPopulate_ReplacesNumericReference(t *testing.T) {
	lookup := &fakeLookup{data: map[string]map[int64]map[string]interface{}{
		"business_types": {
			7: {"seqId": int64(7), "name": "Nhà hàng"},
		},
	}}
	p := NewPopulator([]ReferenceSpec{{Field: "businessTypeId", Collection: "business_types"}}, lookup.fn)

	docs := []map[string]interface{}{
		{"seqId": int64(1), "businessTypeId": int64(7)},
	}
	p.Populate(context.Background(), docs)

	populated, ok := docs[0]["businessTypeId"].(map[string]interface{})
	require.True(t, ok, "tham chiếu phải được thay bằng document đích")
	assert.Equal(t, "Nhà hàng", populated["name"])
}

// seqId không tồn tại trong collection đích: giữ nguyên giá trị gốc, không lỗi
func TestPopulate_MissKeepsOriginalValue(t *testing.T) {
	lookup := &fakeLookup{data: map[string]map[int64]map[string]interface{}{
		"business_types": {},
	}}
	p := NewPopulator([]ReferenceSpec{{Field: "businessTypeId", Collection: "business_types"}}, lookup.fn)

	docs := []map[string]interface{}{
		{"seqId": int64(1), "businessTypeId": int64(999)},
	}
	p.Populate(context.Background(), docs)

	assert.Equal(t, int64(999), docs[0]["businessTypeId"])
}

// Chạy populate hai lần: lần hai giá trị đã là document (không phải số) nên bỏ qua
func TestPopulate_Idempotent(t *testing.T) {
	lookup := &fakeLookup{data: map[string]map[int64]map[string]interface{}{
		"business_types": {
			7: {"seqId": int64(7), "name": "Nhà hàng"},
		},
	}}
	p := NewPopulator([]ReferenceSpec{{Field: "businessTypeId", Collection: "business_types"}}, lookup.fn)

	docs := []map[string]interface{}{
		{"seqId": int64(1), "businessTypeId": int64(7)},
	}
	p.Populate(context.Background(), docs)
	require.Len(t, lookup.calls, 1)

	p.Populate(context.Background(), docs)
	assert.Len(t, lookup.calls, 1, "lần hai không còn giá trị số nào nên không tra cứu nữa")

	populated, ok := docs[0]["businessTypeId"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Nhà hàng", populated["name"])
}

// Các seqId trùng nhau trong trang chỉ được tra cứu một lần
func TestPopulate_DeduplicatesSeqIds(t *testing.T) {
	lookup := &fakeLookup{data: map[string]map[int64]map[string]interface{}{
		"users": {
			5: {"seqId": int64(5), "name": "An"},
		},
	}}
	p := NewPopulator([]ReferenceSpec{{Field: "createdBy", Collection: "users"}}, lookup.fn)

	docs := []map[string]interface{}{
		{"seqId": int64(1), "createdBy": int64(5)},
		{"seqId": int64(2), "createdBy": int64(5)},
		{"seqId": int64(3), "createdBy": int64(5)},
	}
	p.Populate(context.Background(), docs)

	require.Len(t, lookup.calls, 1)
	assert.Equal(t, []int64{5}, lookup.calls[0].seqIds)
	for _, doc := range docs {
		populated, ok := doc["createdBy"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "An", populated["name"])
	}
}

// Lỗi tra cứu không làm hỏng request: giá trị gốc giữ nguyên
func TestPopulate_LookupErrorKeepsOriginal(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection refused")}
	p := NewPopulator([]ReferenceSpec{{Field: "businessTypeId", Collection: "business_types"}}, lookup.fn)

	docs := []map[string]interface{}{
		{"seqId": int64(1), "businessTypeId": int64(7)},
	}
	p.Populate(context.Background(), docs)

	assert.Equal(t, int64(7), docs[0]["businessTypeId"])
}

func TestPopulate_SkipsNonNumericAndMissingFields(t *testing.T) {
	lookup := &fakeLookup{data: map[string]map[int64]map[string]interface{}{}}
	p := NewPopulator([]ReferenceSpec{{Field: "businessTypeId", Collection: "business_types"}}, lookup.fn)

	docs := []map[string]interface{}{
		{"seqId": int64(1)},                                       // field vắng mặt
		{"seqId": int64(2), "businessTypeId": "not-a-number"},     // không phải số
		{"seqId": int64(3), "businessTypeId": map[string]any{}},   // đã populate
	}
	p.Populate(context.Background(), docs)

	assert.Empty(t, lookup.calls, "không có seqId nào cần tra cứu")
	assert.Equal(t, "not-a-number", docs[1]["businessTypeId"])
}
