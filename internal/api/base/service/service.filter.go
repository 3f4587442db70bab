package basesvc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
)

// Các query param dành riêng cho phân trang/điều khiển, không bao giờ trở thành điều kiện lọc
var reservedQueryParams = map[string]bool{
	"page":      true,
	"limit":     true,
	"sort":      true,
	"sortBy":    true,
	"sortOrder": true,
	"search":    true,
	"populate":  true,
}

// FilterOptions cấu hình việc xây filter từ query params
type FilterOptions struct {
	DeniedFields []string // Các field không cho phép client lọc (ví dụ: password)
	SearchFields []string // Các field văn bản tham gia tìm kiếm OR với param search
	MaxFields    int      // Số field lọc tối đa trong một request (0 = không giới hạn)
}

// DefaultFilterOptions trả về cấu hình mặc định: chặn các field nhạy cảm, tối đa 10 điều kiện
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		DeniedFields: []string{"password", "salt", "token"},
		MaxFields:    10,
	}
}

// BuildListFilter xây filter mongo từ query params của request getAll.
// Các quy tắc áp dụng độc lập, param nào có mặt thì quy tắc đó được áp:
//   - search: khớp chuỗi con không phân biệt hoa thường, OR trên các SearchFields
//   - status: "true"/"false" khớp đúng cờ hoạt động; vắng mặt thì không lọc theo status
//   - các param khóa ngoại (kết thúc bằng Id/_id): parse int64, parse hỏng thì bỏ qua
//   - các param min<Field>/max<Field>, from<Field>/to<Field>: gộp thành điều kiện
//     khoảng bao gồm hai đầu trên cùng một field
//
// Param rỗng, bị chặn hoặc không hợp lệ thì bỏ qua chứ không trả lỗi,
// nhờ đó một query param xấu không làm hỏng cả request. Key bắt đầu bằng $
// hoặc chứa dấu chấm không bao giờ trở thành key của filter.
func BuildListFilter(query map[string]string, opts FilterOptions) bson.M {
	filter := bson.M{}

	if search := strings.TrimSpace(query["search"]); search != "" && len(opts.SearchFields) > 0 {
		or := make([]bson.M, 0, len(opts.SearchFields))
		pattern := regexp.QuoteMeta(search)
		for _, field := range opts.SearchFields {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		filter["$or"] = or
	}

	denied := make(map[string]bool, len(opts.DeniedFields))
	for _, f := range opts.DeniedFields {
		denied[strings.ToLower(f)] = true
	}

	count := 0
	for key, value := range query {
		if reservedQueryParams[key] || denied[strings.ToLower(key)] {
			continue
		}
		if key == "" || value == "" || !isSafeFilterKey(key) {
			continue
		}
		if opts.MaxFields > 0 && count >= opts.MaxFields {
			break
		}

		if key == "status" {
			switch value {
			case "true":
				filter["status"] = true
			case "false":
				filter["status"] = false
			}
			continue
		}

		if field, op, ok := rangeBound(key); ok {
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				mergeRange(filter, field, op, n)
				count++
			}
			continue
		}

		if isReferenceParam(key) {
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				filter[key] = n
				count++
			}
			continue
		}

		filter[key] = coerceFilterValue(value)
		count++
	}

	return filter
}

// BuildListSort đọc sortBy/sortOrder từ query params thành sort document cho mongo.
// sortOrder "asc" tăng dần, còn lại giảm dần; vắng sortBy thì sắp theo createdAt mới nhất.
func BuildListSort(query map[string]string) bson.D {
	sortBy := strings.TrimSpace(query["sortBy"])
	if !isSafeFilterKey(sortBy) {
		sortBy = ""
	}
	if sortBy == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	order := -1
	if query["sortOrder"] == "asc" {
		order = 1
	}
	return bson.D{{Key: sortBy, Value: order}}
}

// isSafeFilterKey chặn key mang toán tử mongo ($where, $gt...) hoặc đường dẫn lồng (a.b)
// để query param không bao giờ tiêm được operator vào filter
func isSafeFilterKey(key string) bool {
	return !strings.HasPrefix(key, "$") && !strings.Contains(key, ".")
}

// isReferenceParam nhận diện param khóa ngoại dạng businessTypeId hoặc business_type_id
func isReferenceParam(key string) bool {
	return strings.HasSuffix(key, "Id") || strings.HasSuffix(key, "_id")
}

// rangeBound tách param dạng minPrice/maxPrice/fromDate/toDate thành (field, toán tử)
func rangeBound(key string) (string, string, bool) {
	for prefix, op := range map[string]string{"min": "$gte", "max": "$lte", "from": "$gte", "to": "$lte"} {
		rest, found := strings.CutPrefix(key, prefix)
		if found && rest != "" && unicode.IsUpper(rune(rest[0])) {
			return lowerFirst(rest), op, true
		}
	}
	return "", "", false
}

// mergeRange gộp điều kiện khoảng vào filter, giữ các bound đã có trên cùng field
func mergeRange(filter bson.M, field, op string, value int64) {
	if existing, ok := filter[field].(bson.M); ok {
		existing[op] = value
		return
	}
	filter[field] = bson.M{op: value}
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

// coerceFilterValue ép kiểu giá trị query param về kiểu mongo phù hợp
func coerceFilterValue(value string) interface{} {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
