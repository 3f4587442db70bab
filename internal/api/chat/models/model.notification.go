package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại thông báo
const (
	NotificationTypeSystem  = "system"
	NotificationTypeBooking = "booking"
	NotificationTypeChat    = "chat"
)

// Notification đại diện cho một thông báo gửi đến người dùng.
// RecipientID tham chiếu seqId của User nhận thông báo.
type Notification struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID       int64              `json:"seqId" bson:"seqId,omitempty"`
	RecipientID int64              `json:"recipientId" bson:"recipientId" index:"single:1"`
	Type        string             `json:"type" bson:"type"`
	Title       string             `json:"title" bson:"title"`
	Body        string             `json:"body,omitempty" bson:"body,omitempty"`
	ReadAt      *int64             `json:"readAt,omitempty" bson:"readAt,omitempty"`
	Status      bool               `json:"status" bson:"status"`
	CreatedBy   *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy   *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
