package cateringdto

import (
	models "food_market/internal/api/catering/models"
)

// ReviewRequestCreateInput đầu vào khi gửi lời mời đánh giá cho khách hàng.
type ReviewRequestCreateInput struct {
	BusinessBranchID int64  `json:"businessBranchId" validate:"required,gt=0"`
	CustomerID       int64  `json:"customerId" validate:"required,gt=0"`
	RecipientEmail   string `json:"recipientEmail" validate:"required,email"`
	Message          string `json:"message,omitempty" validate:"omitempty,max=1000,no_xss"`
}

// ToModel chuyển DTO thành model ReviewRequest
func (input ReviewRequestCreateInput) ToModel() models.ReviewRequest {
	return models.ReviewRequest{
		BusinessBranchID: input.BusinessBranchID,
		CustomerID:       input.CustomerID,
		RecipientEmail:   input.RecipientEmail,
		Message:          input.Message,
	}
}

// ReviewRequestUpdateInput đầu vào khi cập nhật lời mời đánh giá.
// Chi nhánh và khách hàng không đổi sau khi tạo.
type ReviewRequestUpdateInput struct {
	RecipientEmail *string `json:"recipientEmail,omitempty" validate:"omitempty,email"`
	Message        *string `json:"message,omitempty" validate:"omitempty,max=1000,no_xss"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input ReviewRequestUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.RecipientEmail != nil {
		update["recipientEmail"] = *input.RecipientEmail
	}
	if input.Message != nil {
		update["message"] = *input.Message
	}
	return update
}
