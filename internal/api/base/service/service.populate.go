package basesvc

import (
	"context"
	"fmt"

	"food_market/internal/global"
	"food_market/internal/logger"
	"food_market/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReferenceSpec mô tả một trường tham chiếu numeric cần populate:
// giá trị seqId trong Field sẽ được thay bằng document đầy đủ từ Collection.
type ReferenceSpec struct {
	Field      string // Tên field chứa seqId tham chiếu (ví dụ: businessTypeId)
	Collection string // Tên collection đích (ví dụ: business_types)
}

// LookupFunc tra cứu một lô seqIds trong một collection,
// trả về map seqId -> document. SeqId không tồn tại thì không có trong map.
type LookupFunc func(ctx context.Context, collectionName string, seqIds []int64) (map[int64]map[string]interface{}, error)

// Populator thay các trường tham chiếu numeric trong documents bằng document đích.
// Mỗi trường tham chiếu chỉ truy vấn database một lần cho cả trang kết quả
// (gom seqIds và tra cứu bằng $in thay vì từng bản ghi một).
type Populator struct {
	specs  []ReferenceSpec
	lookup LookupFunc
}

// NewPopulator tạo populator với danh sách trường tham chiếu.
// lookup có thể là nil, khi đó dùng CollectionLookup tra cứu qua RegistryCollections.
func NewPopulator(specs []ReferenceSpec, lookup LookupFunc) *Populator {
	if lookup == nil {
		lookup = CollectionLookup
	}
	return &Populator{specs: specs, lookup: lookup}
}

// Populate thay thế tại chỗ các trường tham chiếu trong docs.
// Các trường hợp giữ nguyên giá trị gốc (không coi là lỗi):
//   - giá trị không phải số (vắng mặt, hoặc đã là document populate từ trước)
//   - seqId không tồn tại trong collection đích
//
// Lỗi tra cứu của một trường chỉ được ghi log, các trường còn lại vẫn populate tiếp.
func (p *Populator) Populate(ctx context.Context, docs []map[string]interface{}) {
	if len(docs) == 0 {
		return
	}

	for _, spec := range p.specs {
		// Gom các seqId distinct của trường này trong cả trang
		seen := make(map[int64]bool)
		var seqIds []int64
		for _, doc := range docs {
			value, exists := doc[spec.Field]
			if !exists {
				continue
			}
			seqId, ok := utility.ToInt64(value)
			if !ok {
				continue
			}
			if !seen[seqId] {
				seen[seqId] = true
				seqIds = append(seqIds, seqId)
			}
		}
		if len(seqIds) == 0 {
			continue
		}

		resolved, err := p.lookup(ctx, spec.Collection, seqIds)
		if err != nil {
			logger.GetErrorLogger().WithError(err).WithField("collection", spec.Collection).
				Warn("Populate tham chiếu thất bại, giữ nguyên giá trị gốc")
			continue
		}

		for _, doc := range docs {
			value, exists := doc[spec.Field]
			if !exists {
				continue
			}
			seqId, ok := utility.ToInt64(value)
			if !ok {
				continue
			}
			if target, found := resolved[seqId]; found {
				doc[spec.Field] = target
			}
		}
	}
}

// CollectionLookup là LookupFunc mặc định: tra cứu qua RegistryCollections
// bằng một truy vấn $in duy nhất cho cả lô seqIds.
func CollectionLookup(ctx context.Context, collectionName string, seqIds []int64) (map[int64]map[string]interface{}, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", collectionName)
	}

	// Không bao giờ nhúng các trường nhạy cảm vào document được populate
	projection := options.Find().SetProjection(bson.M{"password": 0, "salt": 0, "token": 0})
	cursor, err := collection.Find(ctx, bson.M{"seqId": bson.M{"$in": seqIds}}, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []map[string]interface{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	resolved := make(map[int64]map[string]interface{}, len(docs))
	for _, doc := range docs {
		if seqId, ok := utility.ToInt64(doc["seqId"]); ok {
			resolved[seqId] = doc
		}
	}
	return resolved, nil
}
