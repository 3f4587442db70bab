package basesvc

import (
	"context"
	"errors"
	"fmt"

	"food_market/internal/common"
	"food_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RefState là trạng thái của một bản ghi cha được tham chiếu
type RefState int

const (
	// RefOK bản ghi cha tồn tại và đang hoạt động
	RefOK RefState = iota
	// RefNotFound bản ghi cha không tồn tại
	RefNotFound
	// RefInactive bản ghi cha tồn tại nhưng đã ngừng hoạt động (status=false)
	RefInactive
)

// CheckReferenceState kiểm tra trạng thái bản ghi cha theo seqId.
// Phân biệt rõ không-tồn-tại và đã-ngừng-hoạt-động để thông báo lỗi chính xác.
func CheckReferenceState(ctx context.Context, collectionName string, seqId int64) (RefState, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return RefNotFound, fmt.Errorf("collection %s chưa được đăng ký", collectionName)
	}

	var doc struct {
		Status bool `bson:"status"`
	}
	if err := collection.FindOne(ctx, bson.M{"seqId": seqId}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RefNotFound, nil
		}
		return RefNotFound, common.ConvertMongoError(err)
	}
	if !doc.Status {
		return RefInactive, nil
	}
	return RefOK, nil
}

// RequireActiveReference trả về lỗi nghiệp vụ nếu bản ghi cha không dùng được làm tham chiếu.
// Dùng khi create/update các bản ghi con (ví dụ: chi nhánh tham chiếu loại hình kinh doanh).
func RequireActiveReference(ctx context.Context, resourceName, collectionName string, seqId int64) error {
	state, err := CheckReferenceState(ctx, collectionName, seqId)
	if err != nil {
		return err
	}
	return ReferenceStateError(resourceName, seqId, state)
}

// ReferenceStateError chuyển trạng thái bản ghi cha thành lỗi nghiệp vụ tương ứng.
// RefOK trả về nil; hai trạng thái còn lại trả về lỗi 400 nêu đích danh bản ghi cha.
func ReferenceStateError(resourceName string, seqId int64, state RefState) error {
	switch state {
	case RefNotFound:
		return common.NewError(
			common.ErrCodeBusinessReference,
			fmt.Sprintf("%s với seqId %d không tồn tại", resourceName, seqId),
			common.StatusBadRequest,
			nil,
		)
	case RefInactive:
		return common.NewError(
			common.ErrCodeBusinessReference,
			fmt.Sprintf("%s với seqId %d đã ngừng hoạt động", resourceName, seqId),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
