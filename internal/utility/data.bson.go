package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct thành map[string]interface{}
// bằng cách marshal/unmarshal qua bson. Các field được map theo bson tag,
// nhờ đó map kết quả dùng được trực tiếp trong các truy vấn mongo.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var result map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return result, nil
}

// ToMaps chuyển đổi một slice struct thành slice các map,
// dùng khi cần xử lý tài liệu dạng động (ví dụ: populate tham chiếu).
func ToMaps[T any](items []T) ([]map[string]interface{}, error) {
	results := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m, err := ToMap(item)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, nil
}
