// Package models - các cấu trúc dữ liệu của domain chat.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage đại diện cho một tin nhắn giữa hai người dùng.
// SenderID và ReceiverID tham chiếu seqId của User.
type ChatMessage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID      int64              `json:"seqId" bson:"seqId,omitempty"`
	SenderID   int64              `json:"senderId" bson:"senderId"`
	ReceiverID int64              `json:"receiverId" bson:"receiverId"`
	Content    string             `json:"content" bson:"content"`
	ReadAt     *int64             `json:"readAt,omitempty" bson:"readAt,omitempty"`
	Status     bool               `json:"status" bson:"status"`
	CreatedBy  *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy  *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
