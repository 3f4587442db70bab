package utility

import (
	"encoding/json"
	"strconv"
)

// ToInt64 cố gắng chuyển một giá trị động (từ BSON hoặc JSON) về int64.
// Trả về false nếu giá trị không phải dạng số nguyên.
// Lưu ý: float64 chỉ được chấp nhận khi là số nguyên (không có phần thập phân),
// vì JSON decode số về float64 còn BSON có thể trả về int32/int64.
func ToInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ConvertStruct chuyển đổi một struct sang struct khác qua JSON round-trip.
// target phải là con trỏ đến struct đích.
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(jsonData, target); err != nil {
		return nil, err
	}
	return target, nil
}
