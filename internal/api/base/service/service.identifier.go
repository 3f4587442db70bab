package basesvc

import (
	"strconv"

	"food_market/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentifierKind phân loại định danh bản ghi trong path param
type IdentifierKind int

const (
	// IdentifierObjectID là ObjectID 24 ký tự hex, tra cứu theo _id
	IdentifierObjectID IdentifierKind = iota
	// IdentifierSequence là khóa số tuần tự, tra cứu theo seqId
	IdentifierSequence
	// IdentifierInvalid không thuộc hai dạng trên
	IdentifierInvalid
)

// ClassifyIdentifier phân loại một định danh thô từ client.
// Thứ tự ưu tiên: ObjectID hex 24 ký tự trước, sau đó mới đến số tuần tự.
// Chuỗi toàn chữ số dài 24 ký tự vì vậy được hiểu là ObjectID chứ không phải seqId.
func ClassifyIdentifier(raw string) IdentifierKind {
	if raw == "" {
		return IdentifierInvalid
	}

	if _, err := primitive.ObjectIDFromHex(raw); err == nil {
		return IdentifierObjectID
	}

	if isDigits(raw) {
		if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IdentifierSequence
		}
	}

	return IdentifierInvalid
}

// isDigits kiểm tra chuỗi chỉ gồm chữ số 0-9.
// ParseInt chấp nhận cả dấu "+"/"-" nên phải lọc trước: seqId không bao giờ âm
// và định danh có dấu không phải là khóa tuần tự hợp lệ.
func isDigits(raw string) bool {
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BuildIdentifierFilter chuyển định danh thô thành filter mongo tương ứng:
// _id cho ObjectID, seqId cho khóa số tuần tự.
// Định danh không hợp lệ trả về ErrInvalidIdentifier (không bao giờ chạm database).
func BuildIdentifierFilter(raw string) (bson.M, error) {
	switch ClassifyIdentifier(raw) {
	case IdentifierObjectID:
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, common.ErrInvalidIdentifier
		}
		return bson.M{"_id": oid}, nil
	case IdentifierSequence:
		seqId, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, common.ErrInvalidIdentifier
		}
		return bson.M{"seqId": seqId}, nil
	default:
		return nil, common.ErrInvalidIdentifier
	}
}
