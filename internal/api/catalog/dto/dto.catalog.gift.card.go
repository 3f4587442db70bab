package catalogdto

import (
	models "food_market/internal/api/catalog/models"
)

// GiftCardCreateInput đầu vào khi phát hành thẻ quà tặng.
type GiftCardCreateInput struct {
	BusinessBranchID int64   `json:"businessBranchId" validate:"required,gt=0"`
	Code             string  `json:"code" validate:"required,alphanum,min=6,max=32"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	ExpiresAt        int64   `json:"expiresAt,omitempty" validate:"omitempty,gt=0"`
}

// ToModel chuyển DTO thành model GiftCard. Balance khởi đầu bằng Amount.
func (input GiftCardCreateInput) ToModel() models.GiftCard {
	return models.GiftCard{
		BusinessBranchID: input.BusinessBranchID,
		Code:             input.Code,
		Amount:           input.Amount,
		Balance:          input.Amount,
		ExpiresAt:        input.ExpiresAt,
	}
}

// GiftCardUpdateInput đầu vào khi cập nhật thẻ quà tặng.
// Code và Amount phát hành là bất biến; chỉ balance/hạn dùng/người đổi thẻ thay đổi.
type GiftCardUpdateInput struct {
	Balance    *float64 `json:"balance,omitempty" validate:"omitempty,gte=0"`
	ExpiresAt  *int64   `json:"expiresAt,omitempty" validate:"omitempty,gt=0"`
	RedeemedBy *int64   `json:"redeemedBy,omitempty" validate:"omitempty,gt=0"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input GiftCardUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Balance != nil {
		update["balance"] = *input.Balance
	}
	if input.ExpiresAt != nil {
		update["expiresAt"] = *input.ExpiresAt
	}
	if input.RedeemedBy != nil {
		update["redeemedBy"] = *input.RedeemedBy
	}
	return update
}
