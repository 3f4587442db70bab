package catalogdto

import (
	models "food_market/internal/api/catalog/models"
)

// SubscriptionCreateInput đầu vào khi đăng ký gói dịch vụ cho chi nhánh.
type SubscriptionCreateInput struct {
	PlanID           int64  `json:"planId" validate:"required,gt=0"`
	BusinessBranchID int64  `json:"businessBranchId" validate:"required,gt=0"`
	StartAt          int64  `json:"startAt" validate:"required,gt=0"`
	EndAt            int64  `json:"endAt" validate:"required,gtfield=StartAt"`
	PaymentRef       string `json:"paymentRef,omitempty"`
	AutoRenew        bool   `json:"autoRenew"`
}

// ToModel chuyển DTO thành model Subscription
func (input SubscriptionCreateInput) ToModel() models.Subscription {
	return models.Subscription{
		PlanID:           input.PlanID,
		BusinessBranchID: input.BusinessBranchID,
		StartAt:          input.StartAt,
		EndAt:            input.EndAt,
		PaymentRef:       input.PaymentRef,
		AutoRenew:        input.AutoRenew,
	}
}

// SubscriptionUpdateInput đầu vào khi cập nhật subscription.
// Plan và chi nhánh không đổi sau khi đăng ký, chỉ gia hạn hoặc đổi auto renew.
type SubscriptionUpdateInput struct {
	EndAt      *int64  `json:"endAt,omitempty" validate:"omitempty,gt=0"`
	PaymentRef *string `json:"paymentRef,omitempty"`
	AutoRenew  *bool   `json:"autoRenew,omitempty"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input SubscriptionUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.EndAt != nil {
		update["endAt"] = *input.EndAt
	}
	if input.PaymentRef != nil {
		update["paymentRef"] = *input.PaymentRef
	}
	if input.AutoRenew != nil {
		update["autoRenew"] = *input.AutoRenew
	}
	return update
}
