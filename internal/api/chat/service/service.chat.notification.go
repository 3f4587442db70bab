package chatsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/chat/models"
	"food_market/internal/common"
	"food_market/internal/delivery"
	"food_market/internal/global"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến thông báo
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
	userCollection *mongo.Collection
	emailSender    delivery.EmailSender
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](collection, sequence),
		userCollection:       userCollection,
		emailSender:          delivery.NewSMTPEmailSender(),
	}, nil
}

// InsertOne tạo thông báo mới sau khi kiểm tra người nhận còn hoạt động,
// rồi chuyển tiếp qua email nếu người nhận có địa chỉ email.
func (s *NotificationService) InsertOne(ctx context.Context, notification models.Notification) (models.Notification, error) {
	var zero models.Notification

	if err := basesvc.RequireActiveReference(ctx, "Người nhận", global.MongoDB_ColNames.Users, notification.RecipientID); err != nil {
		return zero, err
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, notification)
	if err != nil {
		return zero, err
	}

	var recipient struct {
		Email string `bson:"email"`
	}
	if err := s.userCollection.FindOne(ctx, bson.M{"seqId": created.RecipientID}).Decode(&recipient); err == nil && recipient.Email != "" {
		body := fmt.Sprintf("<p>%s</p>", created.Body)
		delivery.SendAsync(s.emailSender, delivery.EmailMessage{
			Recipient: recipient.Email,
			Subject:   created.Title,
			Body:      body,
		})
	}

	return created, nil
}

// MarkRead đánh dấu thông báo đã đọc. Chỉ người nhận mới được đánh dấu.
func (s *NotificationService) MarkRead(ctx context.Context, identifier string, recipientSeq int64) (models.Notification, error) {
	var zero models.Notification

	notification, err := s.FindOneByIdentifier(ctx, identifier)
	if err != nil {
		return zero, err
	}
	if notification.RecipientID != recipientSeq {
		return zero, common.NewError(
			common.ErrCodeAuthPrincipal,
			"Bạn không có quyền đánh dấu thông báo này",
			common.StatusForbidden,
			nil,
		)
	}
	if notification.ReadAt != nil {
		return notification, nil
	}

	now := time.Now().UnixMilli()
	return s.UpdateOne(ctx, bson.M{"seqId": notification.SeqID}, map[string]interface{}{"readAt": now})
}
