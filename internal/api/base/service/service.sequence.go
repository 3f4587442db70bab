package basesvc

import (
	"context"
	"fmt"

	"food_market/internal/common"
	"food_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// counterDoc là document trong collection counters,
// mỗi collection nghiệp vụ có một document giữ giá trị khóa tuần tự hiện tại.
type counterDoc struct {
	ID    string `bson:"_id"`   // Tên collection nghiệp vụ
	Value int64  `bson:"value"` // Giá trị khóa tuần tự đã cấp gần nhất
}

// SequenceService cấp phát khóa số tuần tự (seqId) cho các collection.
// Việc cấp phát dùng FindOneAndUpdate với $inc và upsert nên atomic,
// an toàn khi nhiều request tạo bản ghi đồng thời.
type SequenceService struct {
	counters *mongo.Collection
}

// NewSequenceService tạo mới SequenceService trên collection counters
func NewSequenceService(counters *mongo.Collection) *SequenceService {
	return &SequenceService{counters: counters}
}

// NewSequenceServiceFromRegistry tạo SequenceService từ collection counters đã đăng ký
func NewSequenceServiceFromRegistry() (*SequenceService, error) {
	counters, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("failed to get counters collection: %v", common.ErrNotFound)
	}
	return NewSequenceService(counters), nil
}

// Next cấp phát giá trị seqId tiếp theo cho collection được chỉ định.
// Giá trị đầu tiên của mỗi collection là 1.
func (s *SequenceService) Next(ctx context.Context, collectionName string) (int64, error) {
	if collectionName == "" {
		return 0, common.ErrRequiredField
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDoc
	err := s.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": collectionName},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return counter.Value, nil
}
