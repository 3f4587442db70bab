// Package chatdto - DTO của domain chat.
package chatdto

import (
	models "food_market/internal/api/chat/models"
)

// ChatMessageCreateInput đầu vào khi gửi tin nhắn.
// SenderID luôn là người dùng đã xác thực, handler tự gán.
type ChatMessageCreateInput struct {
	ReceiverID int64  `json:"receiverId" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,min=1,max=4000,no_xss"`
}

// ToModel chuyển DTO thành model ChatMessage
func (input ChatMessageCreateInput) ToModel() models.ChatMessage {
	return models.ChatMessage{
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	}
}

// ChatMessageUpdateInput đầu vào khi cập nhật tin nhắn (chỉ sửa nội dung).
type ChatMessageUpdateInput struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1,max=4000,no_xss"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input ChatMessageUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Content != nil {
		update["content"] = *input.Content
	}
	return update
}
