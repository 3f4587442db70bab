package chatdto

import (
	models "food_market/internal/api/chat/models"
)

// NotificationCreateInput đầu vào khi tạo thông báo cho người dùng.
type NotificationCreateInput struct {
	RecipientID int64  `json:"recipientId" validate:"required,gt=0"`
	Type        string `json:"type" validate:"required,oneof=system booking chat"`
	Title       string `json:"title" validate:"required,min=1,max=200,no_xss"`
	Body        string `json:"body,omitempty" validate:"omitempty,max=2000,no_xss"`
}

// ToModel chuyển DTO thành model Notification
func (input NotificationCreateInput) ToModel() models.Notification {
	return models.Notification{
		RecipientID: input.RecipientID,
		Type:        input.Type,
		Title:       input.Title,
		Body:        input.Body,
	}
}

// NotificationUpdateInput đầu vào khi cập nhật thông báo.
// Người nhận và loại thông báo không đổi sau khi tạo.
type NotificationUpdateInput struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Body  *string `json:"body,omitempty" validate:"omitempty,max=2000,no_xss"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input NotificationUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Body != nil {
		update["body"] = *input.Body
	}
	return update
}
