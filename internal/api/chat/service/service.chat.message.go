// Package chatsvc - service của domain chat.
package chatsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "food_market/internal/api/base/models"
	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/chat/models"
	"food_market/internal/common"
	"food_market/internal/global"
)

// ChatMessageService là cấu trúc chứa các phương thức liên quan đến tin nhắn
type ChatMessageService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatMessage]
}

// NewChatMessageService tạo mới ChatMessageService
func NewChatMessageService() (*ChatMessageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_messages collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &ChatMessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatMessage](collection, sequence),
	}, nil
}

// InsertOne gửi tin nhắn mới sau khi kiểm tra người nhận còn hoạt động
func (s *ChatMessageService) InsertOne(ctx context.Context, message models.ChatMessage) (models.ChatMessage, error) {
	var zero models.ChatMessage

	if err := basesvc.RequireActiveReference(ctx, "Người nhận", global.MongoDB_ColNames.Users, message.ReceiverID); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, message)
}

// FindConversation trả về tin nhắn giữa hai người dùng theo cả hai chiều,
// mới nhất trước, có phân trang.
func (s *ChatMessageService) FindConversation(ctx context.Context, userSeq, otherSeq int64, page, limit int64) (*basemodels.PaginateResult[models.ChatMessage], error) {
	filter := bson.M{
		"status": true,
		"$or": []bson.M{
			{"senderId": userSeq, "receiverId": otherSeq},
			{"senderId": otherSeq, "receiverId": userSeq},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}
