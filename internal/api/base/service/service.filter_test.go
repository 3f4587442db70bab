// Package basesvc - test xây filter danh sách từ query params.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListFilter_EmptyQueryMeansNoFilter(t *testing.T) {
	filter := BuildListFilter(map[string]string{}, DefaultFilterOptions())

	assert.Empty(t, filter, "vắng mặt param thì không lọc, trả về cả bản ghi ngừng hoạt động")
}

func TestBuildListFilter_StatusParam(t *testing.T) {
	filter := BuildListFilter(map[string]string{"status": "true"}, DefaultFilterOptions())
	assert.Equal(t, true, filter["status"])

	filter = BuildListFilter(map[string]string{"status": "false"}, DefaultFilterOptions())
	assert.Equal(t, false, filter["status"])

	// Giá trị ngoài true/false thì bỏ qua chứ không lọc sai
	filter = BuildListFilter(map[string]string{"status": "yes"}, DefaultFilterOptions())
	assert.NotContains(t, filter, "status")
}

func TestBuildListFilter_SearchBuildsCaseInsensitiveOr(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.SearchFields = []string{"name", "description"}

	filter := BuildListFilter(map[string]string{"search": "phở"}, opts)

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"$regex": "phở", "$options": "i"}, or[0]["name"])
	assert.Equal(t, bson.M{"$regex": "phở", "$options": "i"}, or[1]["description"])
}

// Ký tự đặc biệt của regex trong chuỗi tìm kiếm phải được escape
func TestBuildListFilter_SearchEscapesRegex(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.SearchFields = []string{"name"}

	filter := BuildListFilter(map[string]string{"search": "a.b(c"}, opts)

	or := filter["$or"].([]bson.M)
	pattern := or[0]["name"].(bson.M)["$regex"].(string)
	assert.Equal(t, `a\.b\(c`, pattern)
}

func TestBuildListFilter_SearchIgnoredWithoutSearchFields(t *testing.T) {
	filter := BuildListFilter(map[string]string{"search": "phở"}, DefaultFilterOptions())

	assert.NotContains(t, filter, "$or")
	assert.NotContains(t, filter, "search")
}

func TestBuildListFilter_ReferenceParamsParseAsInt(t *testing.T) {
	filter := BuildListFilter(map[string]string{"businessTypeId": "7"}, DefaultFilterOptions())

	assert.Equal(t, int64(7), filter["businessTypeId"])
}

// Khóa ngoại không parse được thì bỏ qua, không làm hỏng request
func TestBuildListFilter_MalformedReferenceDropped(t *testing.T) {
	filter := BuildListFilter(map[string]string{"businessTypeId": "abc"}, DefaultFilterOptions())

	assert.NotContains(t, filter, "businessTypeId")
}

// Key mang toán tử mongo hoặc đường dẫn lồng không bao giờ lọt vào filter
func TestBuildListFilter_RejectsOperatorKeys(t *testing.T) {
	filter := BuildListFilter(map[string]string{
		"$where":        "sleep(10000)",
		"$gt":           "1",
		"profile.email": "a@b.c",
		"name":          "An",
	}, DefaultFilterOptions())

	assert.Equal(t, bson.M{"name": "An"}, filter)
}

func TestBuildListSort_RejectsOperatorSortKey(t *testing.T) {
	sort := BuildListSort(map[string]string{"sortBy": "$where", "sortOrder": "asc"})

	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key, "sortBy không hợp lệ thì quay về sắp xếp mặc định")
}

func TestBuildListFilter_RangeParamsMergeIntoOneCondition(t *testing.T) {
	filter := BuildListFilter(map[string]string{
		"minGuestCount": "10",
		"maxGuestCount": "50",
	}, DefaultFilterOptions())

	assert.Equal(t, bson.M{"$gte": int64(10), "$lte": int64(50)}, filter["guestCount"])
}

func TestBuildListFilter_FromToRange(t *testing.T) {
	filter := BuildListFilter(map[string]string{
		"fromEventDate": "1700000000000",
		"toEventDate":   "1800000000000",
	}, DefaultFilterOptions())

	assert.Equal(t, bson.M{"$gte": int64(1700000000000), "$lte": int64(1800000000000)}, filter["eventDate"])
}

func TestBuildListFilter_MalformedRangeDropped(t *testing.T) {
	filter := BuildListFilter(map[string]string{"minGuestCount": "abc"}, DefaultFilterOptions())

	assert.NotContains(t, filter, "guestCount")
	assert.NotContains(t, filter, "minGuestCount")
}

func TestBuildListFilter_CoercesPlainValues(t *testing.T) {
	filter := BuildListFilter(map[string]string{
		"autoRenew": "true",
		"name":      "Phở Hòa",
	}, DefaultFilterOptions())

	assert.Equal(t, true, filter["autoRenew"])
	assert.Equal(t, "Phở Hòa", filter["name"])
}

func TestBuildListFilter_SkipsReservedParams(t *testing.T) {
	filter := BuildListFilter(map[string]string{
		"page":      "2",
		"limit":     "5",
		"sort":      "createdAt",
		"sortBy":    "name",
		"sortOrder": "asc",
		"populate":  "businessTypeId",
		"name":      "An",
	}, DefaultFilterOptions())

	assert.Equal(t, bson.M{"name": "An"}, filter)
}

func TestBuildListFilter_SkipsDeniedAndEmptyParams(t *testing.T) {
	filter := BuildListFilter(map[string]string{
		"password": "secret",
		"Token":    "abc",
		"note":     "",
	}, DefaultFilterOptions())

	assert.NotContains(t, filter, "password")
	assert.NotContains(t, filter, "Token", "so khớp field bị chặn không phân biệt hoa thường")
	assert.NotContains(t, filter, "note")
}

func TestBuildListFilter_MaxFieldsLimit(t *testing.T) {
	opts := FilterOptions{MaxFields: 2}
	filter := BuildListFilter(map[string]string{
		"a": "1",
		"b": "2",
		"c": "3",
		"d": "4",
	}, opts)

	assert.Len(t, filter, 2)
}

func TestBuildListSort_Defaults(t *testing.T) {
	sort := BuildListSort(map[string]string{})

	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestBuildListSort_SortByAndOrder(t *testing.T) {
	sort := BuildListSort(map[string]string{"sortBy": "name", "sortOrder": "asc"})
	require.Len(t, sort, 1)
	assert.Equal(t, "name", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)

	sort = BuildListSort(map[string]string{"sortBy": "name", "sortOrder": "desc"})
	assert.Equal(t, -1, sort[0].Value)

	// sortOrder lạ thì coi như desc
	sort = BuildListSort(map[string]string{"sortBy": "name", "sortOrder": "up"})
	assert.Equal(t, -1, sort[0].Value)
}
